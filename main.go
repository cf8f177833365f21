// Command upc-keys-relay serves default WPA key recovery for UPC-class routers over HTTP.
//
//	@title						UPC Keys Relay API
//	@version					1.0
//	@description				Recovers factory default WPA passphrases of UPC-class routers from their SSID.
//	@BasePath					/
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						X-API-Key
package main

import (
	"log"

	"go.uber.org/zap"
)

func main() {
	if err := initLoggerWrapper(); err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := runServer(DefaultServerAddr); err != nil {
		logger.Fatal("Server stopped with error", zap.Error(err))
	}
}
