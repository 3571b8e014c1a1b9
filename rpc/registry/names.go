package registry

import (
	"fmt"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// AnchorName returns the name of the anchor of the appchain promoted by the
// registry deployed at the given address. It is the same name the registry
// sets to the appchain record on election conclusion.
func AnchorName(id string, registry util.Uint160) string {
	return id + "." + address.Uint160ToString(registry)
}

// ParseAnchorName splits anchor name into the appchain ID and the registry
// address.
func ParseAnchorName(name string) (string, util.Uint160, error) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 {
		return "", util.Uint160{}, fmt.Errorf("invalid anchor name %q", name)
	}

	registry, err := address.StringToUint160(name[i+1:])
	if err != nil {
		return "", util.Uint160{}, fmt.Errorf("invalid registry address in anchor name %q: %w", name, err)
	}

	return name[:i], registry, nil
}
