package api

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/vaulto-labs/vaulto-gateway/platform"
)

// Catalog handlers. All of this is hard-coded demo data; the handlers exist
// so the frontend talks to one backend for both the catalog and the chat.

func (s *Gateway) GetStablecoins(w http.ResponseWriter, r *http.Request) *APIError {
	WriteJSON(w, http.StatusOK, platform.Stablecoins())
	return nil
}

func (s *Gateway) GetAssets(w http.ResponseWriter, r *http.Request) *APIError {
	WriteJSON(w, http.StatusOK, platform.Assets(r.URL.Query().Get("type")))
	return nil
}

func (s *Gateway) GetVaults(w http.ResponseWriter, r *http.Request) *APIError {
	WriteJSON(w, http.StatusOK, platform.Vaults())
	return nil
}

func (s *Gateway) GetPredictionMarkets(w http.ResponseWriter, r *http.Request) *APIError {
	WriteJSON(w, http.StatusOK, platform.PredictionMarkets())
	return nil
}

func (s *Gateway) GetMarketInsights(w http.ResponseWriter, r *http.Request) *APIError {
	WriteJSON(w, http.StatusOK, platform.MarketInsights())
	return nil
}

type walletResponse struct {
	Address string  `json:"address"`
	Balance float64 `json:"balance"`
}

// ConnectWallet fabricates a wallet for the demo: a random address and a
// fixed starting balance. No chain is involved.
func (s *Gateway) ConnectWallet(w http.ResponseWriter, r *http.Request) *APIError {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return &APIError{
			Status:  http.StatusInternalServerError,
			Message: "Internal Server Error",
			Error:   err,
		}
	}
	WriteJSON(w, http.StatusOK, walletResponse{
		Address: "0x" + hex.EncodeToString(buf),
		Balance: 10000,
	})
	return nil
}
