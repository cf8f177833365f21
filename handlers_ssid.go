package main

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// getKeysBySSIDHandler enumerates every default key candidate for an SSID
//
//	@Summary		Get default key candidates
//	@Description	Enumerates every serial whose checksum matches the SSID suffix and derives its factory WPA passphrase
//	@Tags			Keys
//	@Produce		json
//	@Param			ssid	path		string	true	"Full SSID or numeric suffix"	example(UPC1234567)
//	@Param			band	query		string	false	"Radio band (2.4GHz or 5GHz)"	default(2.4GHz)
//	@Success		200		{object}	Response{data=KeyLookupResponse}
//	@Failure		400		{object}	Response
//	@Failure		401		{object}	Response
//	@Failure		408		{object}	Response
//	@Failure		429		{object}	Response
//	@Failure		500		{object}	Response
//	@Security		ApiKeyAuth
//	@Router			/api/v1/upc/keys/{ssid} [get]
func getKeysBySSIDHandler(w http.ResponseWriter, r *http.Request) {
	target, ok := ExtractTarget(w, r)
	if !ok {
		return
	}
	band, ok := ExtractBand(w, r)
	if !ok {
		return
	}

	ctx, cancel := contextWithLookupTimeout(r)
	defer cancel()

	results, cached, err := lookupKeys(ctx, target, band)
	if err != nil {
		logger.Error("Failed to enumerate key candidates",
			zap.Uint32("target", target),
			zap.String("band", band.String()),
			zap.Error(err))
		sendKeygenError(w, err)
		return
	}

	ssid := canonicalSSID(target)
	AuditLog(AuditEventKeyLookup, GetClientIP(r), ssid,
		fmt.Sprintf("band=%s candidates=%d cached=%t", band, len(results), cached))

	sendResponse(w, http.StatusOK, StatusOK, KeyLookupResponse{
		SSID:       ssid,
		Target:     target,
		Band:       band.String(),
		Count:      len(results),
		Cached:     cached,
		Candidates: results,
	})
}

// precomputeKeysHandler queues a background enumeration that fills the cache
//
//	@Summary		Precompute key candidates
//	@Description	Queues the enumeration for an SSID so a later GET is served from cache
//	@Tags			Keys
//	@Produce		json
//	@Param			ssid	path		string	true	"Full SSID or numeric suffix"	example(UPC1234567)
//	@Param			band	query		string	false	"Radio band (2.4GHz or 5GHz)"	default(2.4GHz)
//	@Success		202		{object}	Response{data=MessageResponse}
//	@Failure		400		{object}	Response
//	@Failure		401		{object}	Response
//	@Failure		503		{object}	Response
//	@Security		ApiKeyAuth
//	@Router			/api/v1/upc/keys/{ssid}/precompute [post]
func precomputeKeysHandler(w http.ResponseWriter, r *http.Request) {
	target, ok := ExtractTarget(w, r)
	if !ok {
		return
	}
	band, ok := ExtractBand(w, r)
	if !ok {
		return
	}

	if !taskWorkerPool.Submit(target, band, TaskTypePrecompute) {
		sendError(w, http.StatusServiceUnavailable, StatusServiceUnavailable, ErrQueueFull)
		return
	}
	AuditLog(AuditEventPrecompute, GetClientIP(r), canonicalSSID(target), "band="+band.String())

	sendResponse(w, http.StatusAccepted, StatusAccepted, map[string]string{
		"message": MsgPrecomputeSubmitted,
	})
}
