package currency

import "github.com/SscSPs/gateway_client/internal/core/domain"

// builtin is the gateway's currency directory.
var builtin = []domain.Currency{
	{ISO: 156, Alpha: "CNY", Name: "Chinese yuan", Precision: 2},
	{ISO: 344, Alpha: "HKD", Name: "Hong Kong dollar", Precision: 2},
	{ISO: 392, Alpha: "JPY", Name: "Japanese yen", Precision: 2},
	{ISO: 398, Alpha: "KZT", Name: "Tenge", Precision: 2},
	{ISO: 643, Alpha: "RUB", Name: "Russian ruble", Precision: 2},
	{ISO: 826, Alpha: "GBP", Name: "Pound Sterling", Precision: 2},
	{ISO: 840, Alpha: "USD", Name: "US Dollar", Precision: 2},
	{ISO: 933, Alpha: "BYN", Name: "Belarusian Ruble", Precision: 2},
	{ISO: 978, Alpha: "EUR", Name: "Euro", Precision: 2},
	{ISO: 980, Alpha: "UAH", Name: "Ukrainian hryvnia", Precision: 2},
	{ISO: 1000, Alpha: "BTC", Name: "Bitcoin", Precision: 8},
	{ISO: 1002, Alpha: "ETH", Name: "Ethereum", Precision: 18},
	{ISO: 1003, Alpha: "LTC", Name: "Litecoin", Precision: 8},
	{ISO: 1005, Alpha: "DASH", Name: "DASH", Precision: 8},
	{ISO: 1006, Alpha: "BCH", Name: "Bitcoin Cash", Precision: 8},
	{ISO: 1007, Alpha: "XMR", Name: "Monero", Precision: 12},
	{ISO: 1010, Alpha: "XRP", Name: "Ripple", Precision: 6},
	{ISO: 1012, Alpha: "XEM", Name: "NEM", Precision: 6},
	{ISO: 1018, Alpha: "ADA", Name: "Cardano", Precision: 6},
	{ISO: 1019, Alpha: "DOGE", Name: "Dogecoin", Precision: 8},
	{ISO: 1020, Alpha: "ZEC", Name: "Zcash", Precision: 8},
	{ISO: 1021, Alpha: "XLM", Name: "Stellar", Precision: 7},
	{ISO: 1022, Alpha: "EOS", Name: "EOS", Precision: 4},
	{ISO: 1026, Alpha: "TRX", Name: "TRON", Precision: 6},
	{ISO: 2005, Alpha: "USDT", Name: "Tether USD", Precision: 8, Nodes: []string{"usdt-omni", "usdt-eth"}},
	{ISO: 2006, Alpha: "EURT", Name: "Tether EUR", Precision: 8, Nodes: []string{"eurt-omni", "eurt-eth"}},
	{ISO: 2014, Alpha: "NEO", Name: "NEO", Precision: 3},
	{ISO: 2021, Alpha: "PAX", Name: "PAX", Precision: 18, Nodes: []string{"pax-eth"}},
	{ISO: 2022, Alpha: "TUSD", Name: "TrueUSD", Precision: 18, Nodes: []string{"tusd-eth"}},
	{ISO: 2023, Alpha: "GUSD", Name: "Gemini dollar", Precision: 2, Nodes: []string{"gusd-eth"}},
	{ISO: 2024, Alpha: "USDC", Name: "USD//Coin", Precision: 6, Nodes: []string{"usdc-eth"}},
	{ISO: 2025, Alpha: "BNB", Name: "Binance Coin", Precision: 8},
	{ISO: 2068, Alpha: "DAI", Name: "Dai Stablecoin", Precision: 18, Nodes: []string{"dai-eth"}},
	{ISO: 2077, Alpha: "BUSD", Name: "Binance USD", Precision: 18, Nodes: []string{"busd-eth"}},
}

var defaultRegistry = MustNewRegistry(builtin)

// Default returns the registry built from the gateway's currency directory.
// The returned value is read-only and shared.
func Default() *Registry { return defaultRegistry }
