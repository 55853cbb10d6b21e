package app

// Config holds runtime wiring options for building the app.
type Config struct {
	RPC          string // node JSON-RPC endpoint, e.g. http://127.0.0.1:9033
	KeystorePath string // path of the encrypted keystore file
	ChainDriver  string // name of the registered chain driver
}
