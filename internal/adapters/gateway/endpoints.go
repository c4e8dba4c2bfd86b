package gateway

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/gateway_client/internal/apperrors"
	"github.com/SscSPs/gateway_client/internal/core/domain"
)

const (
	ProductionGateway = "https://gw.b2binpay.com"
	SandboxGateway    = "https://gw-test.b2binpay.com"
)

const (
	uriLogin          = "/api/login"
	uriBills          = "/api/v1/pay/bills"
	uriWallets        = "/api/v1/pay/wallets"
	uriTransactions   = "/api/v1/pay/transactions"
	uriRates          = "/api/v1/rates/"
	uriVirtualWallets = "/api/v1/virtualwallets/wallets"
	uriWithdrawals    = "/api/v1/virtualwallets/withdraws"
	uriTransfers      = "/api/v1/virtualwallets/transfers"
)

// nodes are the per-currency hosts that accept new bills in production.
var nodes = map[string]string{
	"ADA":       "https://ada.b2binpay.com",
	"BCH":       "https://bch.b2binpay.com",
	"BNB":       "https://bnb.b2binpay.com",
	"BTC":       "https://btc.b2binpay.com",
	"BUSD-ETH":  "https://eth.b2binpay.com",
	"DAI-ETH":   "https://eth.b2binpay.com",
	"DASH":      "https://dash.b2binpay.com",
	"DOGE":      "https://doge.b2binpay.com",
	"EOS":       "https://eos.b2binpay.com",
	"ETH":       "https://eth.b2binpay.com",
	"GUSD-ETH":  "https://eth.b2binpay.com",
	"LTC":       "https://ltc.b2binpay.com",
	"NEO":       "https://neo.b2binpay.com",
	"PAX-ETH":   "https://eth.b2binpay.com",
	"TRX":       "https://tron.b2binpay.com",
	"TUSD-ETH":  "https://eth.b2binpay.com",
	"USDC-ETH":  "https://eth.b2binpay.com",
	"USDT-ETH":  "https://eth.b2binpay.com",
	"USDT-OMNI": "https://omni.b2binpay.com",
	"XEM":       "https://nem.b2binpay.com",
	"XLM":       "https://xlm.b2binpay.com",
	"XMR":       "https://xmr.b2binpay.com",
	"XRP":       "https://xrp.b2binpay.com",
	"ZEC":       "https://zec.b2binpay.com",
}

// Endpoints builds gateway URLs for either the production or the sandbox gateway.
// An id of 0 selects the collection URL.
type Endpoints struct {
	gateway string
	sandbox bool
}

func NewEndpoints(sandbox bool) Endpoints {
	if sandbox {
		return Endpoints{gateway: SandboxGateway, sandbox: true}
	}
	return Endpoints{gateway: ProductionGateway}
}

// NewEndpointsWithBase points every URL, bill creation included, at base.
// Used for local gateway stubs.
func NewEndpointsWithBase(base string) Endpoints {
	return Endpoints{gateway: strings.TrimRight(base, "/"), sandbox: true}
}

func (e Endpoints) Gateway() string { return e.gateway }

func (e Endpoints) Login() string { return e.gateway + uriLogin }

func (e Endpoints) Rates(rateType domain.RateType, currency string) string {
	if rateType != domain.RateTypeWithdraw {
		rateType = domain.RateTypeDeposit
	}
	return e.gateway + uriRates + string(rateType) + "/" + strings.ToLower(strings.TrimSpace(currency))
}

func (e Endpoints) Wallets(id int) string { return e.resource(uriWallets, id) }

func (e Endpoints) Bills(id int) string { return e.resource(uriBills, id) }

// NewBill returns the bill creation URL. Production bills go to the node serving the currency.
func (e Endpoints) NewBill(currency string) (string, error) {
	if e.sandbox {
		return e.gateway + uriBills, nil
	}
	node, ok := Node(currency)
	if !ok {
		return "", fmt.Errorf("%w: no node for %q", apperrors.ErrUnknownCurrency, currency)
	}
	return node + uriBills, nil
}

func (e Endpoints) Transactions(id int) string { return e.resource(uriTransactions, id) }

func (e Endpoints) VirtualWallets(id int) string { return e.resource(uriVirtualWallets, id) }

func (e Endpoints) NewWithdrawal() string { return e.gateway + uriWithdrawals }

func (e Endpoints) Withdrawals(id int) string { return e.resource(uriWithdrawals, id) }

func (e Endpoints) Transfers(id int) string { return e.resource(uriTransfers, id) }

func (e Endpoints) resource(uri string, id int) string {
	if id != 0 {
		return e.gateway + uri + "/" + strconv.Itoa(id)
	}
	return e.gateway + uri
}

// Node returns the bill node for a currency code such as "BTC" or "usdt-eth".
func Node(currency string) (string, bool) {
	node, ok := nodes[strings.ToUpper(strings.TrimSpace(currency))]
	return node, ok
}
