package types

// Module name and store key
const (
	ModuleName = "settings"
	StoreKey   = ModuleName
)

// Recognized parameter names
const (
	MaximumNumberOfPositionsInPool          = "MaximumNumberOfPositionsInPool"
	MaximumNumberOfPoolsPerUser             = "MaximumNumberOfPoolsPerUser"
	MaximumPerformanceFee                   = "MaximumPerformanceFee"
	MinimumTimeBetweenPerformanceFeeUpdates = "MinimumTimeBetweenPerformanceFeeUpdates"
	MinimumTimeBetweenSnapshots             = "MinimumTimeBetweenSnapshots"
	MaximumNumberOfCappedPoolTokens         = "MaximumNumberOfCappedPoolTokens"
	MinimumNumberOfCappedPoolTokens         = "MinimumNumberOfCappedPoolTokens"
	MaximumCappedPoolSeedPrice              = "MaximumCappedPoolSeedPrice"
	MinimumCappedPoolSeedPrice              = "MinimumCappedPoolSeedPrice"
	MarketplaceProtocolFee                  = "MarketplaceProtocolFee"
	MarketplaceManagerFee                   = "MarketplaceManagerFee"
)

// Parameter is a protocol-wide numeric setting.
// Fee parameters are expressed in basis points, time windows in seconds,
// price bounds in 18-decimal units.
type Parameter struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// DefaultParameters returns the initial parameter set applied at genesis.
func DefaultParameters() []Parameter {
	return []Parameter{
		{Name: MaximumNumberOfPositionsInPool, Value: 7},
		{Name: MaximumNumberOfPoolsPerUser, Value: 2},
		{Name: MaximumPerformanceFee, Value: 3000},
		{Name: MinimumTimeBetweenPerformanceFeeUpdates, Value: 86400},
		{Name: MinimumTimeBetweenSnapshots, Value: 86400},
		{Name: MaximumNumberOfCappedPoolTokens, Value: 1000000},
		{Name: MinimumNumberOfCappedPoolTokens, Value: 100},
		{Name: MaximumCappedPoolSeedPrice, Value: 1000},
		{Name: MinimumCappedPoolSeedPrice, Value: 1},
		{Name: MarketplaceProtocolFee, Value: 100},
		{Name: MarketplaceManagerFee, Value: 200},
	}
}

// IsRecognizedParameter reports whether name is a known setting.
func IsRecognizedParameter(name string) bool {
	for _, p := range DefaultParameters() {
		if p.Name == name {
			return true
		}
	}
	return false
}
