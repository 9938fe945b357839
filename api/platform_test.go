package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vaulto-labs/vaulto-gateway/platform"
)

func getJSON(t *testing.T, h http.Handler, path string, v any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("%s: expected 200, got %d", path, w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("%s: decoding body: %v", path, err)
	}
}

func TestCatalogEndpoints(t *testing.T) {
	h, _ := newTestGateway(&mockCompleter{configured: true})

	var coins []platform.Stablecoin
	getJSON(t, h, "/api/stablecoins", &coins)
	if len(coins) != 3 {
		t.Fatalf("expected 3 stablecoins, got %d", len(coins))
	}

	var assets []platform.TokenizedAsset
	getJSON(t, h, "/api/assets", &assets)
	if len(assets) == 0 {
		t.Fatal("expected a non-empty asset catalog")
	}

	var stocks []platform.TokenizedAsset
	getJSON(t, h, "/api/assets?type=stock", &stocks)
	for _, a := range stocks {
		if a.Type != "stock" {
			t.Fatalf("filter leaked asset of type %q", a.Type)
		}
	}
	if len(stocks) == 0 || len(stocks) == len(assets) {
		t.Fatalf("filter had no effect: %d of %d", len(stocks), len(assets))
	}

	var vaults []platform.Vault
	getJSON(t, h, "/api/vaults", &vaults)
	if len(vaults) == 0 {
		t.Fatal("expected vaults")
	}

	var markets []platform.PredictionMarket
	getJSON(t, h, "/api/predictions", &markets)
	if len(markets) == 0 {
		t.Fatal("expected prediction markets")
	}
}

func TestConnectWallet(t *testing.T) {
	h, _ := newTestGateway(&mockCompleter{configured: true})

	req := httptest.NewRequest(http.MethodPost, "/api/wallet/connect", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Address string  `json:"address"`
		Balance float64 `json:"balance"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if !strings.HasPrefix(resp.Address, "0x") || len(resp.Address) != 42 {
		t.Fatalf("malformed mock address %q", resp.Address)
	}
	if resp.Balance != 10000 {
		t.Fatalf("unexpected starting balance %v", resp.Balance)
	}
}
