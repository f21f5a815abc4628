package nakama

const (
	// RpcClassifyCards is the RPC id clients call to classify a card group.
	RpcClassifyCards = "classify_cards"

	// RpcValidateMove is the RPC id clients call to check a play against the table.
	RpcValidateMove = "validate_move"

	// EnvConfigPath names the runtime env entry holding the HCL config path.
	EnvConfigPath = "DEUCES_CONFIG"
)

// gRPC status codes used for runtime errors.
const (
	codeInvalidArgument = 3
	codeInternal        = 13
)
