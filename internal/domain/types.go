package domain

// Key material lengths enforced at the boundaries of this tool. The signing
// math behind them lives in the external chain library.
const (
	MiniSecretKeyLen = 32
	SecretKeyLen     = 64
	PublicKeyLen     = 32
	HashLen          = 32
)

// Network selects which address flavor the external address codec produces.
type Network uint8

const (
	Mainnet Network = iota
	Testnet
)

// Address is a bech32-style account address produced by the external codec.
type Address string

// String returns the string form of the address.
func (a Address) String() string { return string(a) }

// ChainState is the node's view used for one composition. It is fetched
// fresh every time and never cached across invocations.
type ChainState struct {
	BestNumber uint64
	BestHash   HexBytes
	ShardNum   uint16
	ShardCount uint16
}

// ComposedTransaction is the terminal artifact of the composition pipeline.
// It is immutable once produced; broadcasting it is out of scope.
type ComposedTransaction struct {
	ShardNum             uint16   `json:"shard_num"`
	ShardCount           uint16   `json:"shard_count"`
	SenderAddress        Address  `json:"sender_address"`
	SenderTestnetAddress Address  `json:"sender_testnet_address"`
	Nonce                uint64   `json:"nonce"`
	Period               uint64   `json:"period"`
	Current              uint64   `json:"current"`
	CurrentHash          HexBytes `json:"current_hash"`
	Raw                  HexBytes `json:"raw"`
}
