package main

import (
	"net/http"

	"github.com/Cepat-Kilat-Teknologi/upc-keys-relay/keygen"
	"go.uber.org/zap"
)

// getSerialKeyHandler derives the passphrase of one known device serial
//
//	@Summary		Derive key from serial
//	@Description	Derives the factory WPA passphrase for a serial number and reports the SSID it broadcasts on the band
//	@Tags			Device
//	@Produce		json
//	@Param			serial	path		string	true	"Device serial number"	example(SAAP12345678)
//	@Param			band	query		string	false	"Radio band (2.4GHz or 5GHz)"	default(2.4GHz)
//	@Success		200		{object}	Response{data=SerialKeyResponse}
//	@Failure		400		{object}	Response
//	@Failure		401		{object}	Response
//	@Failure		429		{object}	Response
//	@Failure		500		{object}	Response
//	@Security		ApiKeyAuth
//	@Router			/api/v1/upc/serial/{serial} [get]
func getSerialKeyHandler(w http.ResponseWriter, r *http.Request) {
	serial, tuple, ok := ExtractSerial(w, r)
	if !ok {
		return
	}
	band, ok := ExtractBand(w, r)
	if !ok {
		return
	}

	password, err := keygen.DerivePassword(serial, band)
	if err != nil {
		logger.Error("Failed to derive serial key", zap.String("band", band.String()), zap.Error(err))
		sendKeygenError(w, err)
		return
	}

	// SSID stays empty when the checksum does not fit 7 digits
	ssid, _ := tuple.SSID(band)
	AuditLog(AuditEventSerialKey, GetClientIP(r), ssid, "band="+band.String())

	sendResponse(w, http.StatusOK, StatusOK, SerialKeyResponse{
		Serial:   serial,
		Band:     band.String(),
		SSID:     ssid,
		Checksum: keygen.Checksum(tuple, band.Magic()),
		Password: password,
	})
}
