package pkg

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ParseEthAddress validates a 0x prefixed hex address. Mixed case input must
// carry a valid EIP-55 checksum.
func ParseEthAddress(address string) (common.Address, error) {
	if !common.IsHexAddress(address) || !strings.HasPrefix(address, "0x") {
		return common.Address{}, fmt.Errorf("invalid address %q", address)
	}

	addr := common.HexToAddress(address)
	body := address[2:]
	if body != strings.ToLower(body) && body != strings.ToUpper(body) && addr.Hex() != address {
		return common.Address{}, fmt.Errorf("invalid checksum for address %q", address)
	}
	return addr, nil
}
