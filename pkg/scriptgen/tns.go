package scriptgen

import (
	"fmt"
	"strings"
)

// TNSOptions are the connection form fields used to derive a connect descriptor.
type TNSOptions struct {
	Host       string `json:"host" validate:"required"`
	Port       string `json:"port" validate:"required"`
	Service    string `json:"service" validate:"required"`
	WalletPath string `json:"wallet_path"`
}

// Validate performs the required-field checks.
func (o TNSOptions) Validate() error {
	switch {
	case strings.TrimSpace(o.Host) == "":
		return fmt.Errorf("%w: host is required", ErrInvalidOptions)
	case strings.TrimSpace(o.Port) == "":
		return fmt.Errorf("%w: port is required", ErrInvalidOptions)
	case strings.TrimSpace(o.Service) == "":
		return fmt.Errorf("%w: service is required", ErrInvalidOptions)
	}
	return nil
}

// GenerateTNS renders a single-line DESCRIPTION. A wallet switches the
// protocol to TCPS and adds its directory as a SECURITY clause.
func GenerateTNS(o TNSOptions) string {
	protocol := "TCP"
	security := ""
	if o.WalletPath != "" {
		protocol = "TCPS"
		security = "(SECURITY=(MY_WALLET_DIRECTORY=" + o.WalletPath + "))"
	}
	return "(DESCRIPTION=(ADDRESS=(PROTOCOL=" + protocol + ")(HOST=" + o.Host + ")(PORT=" + o.Port + "))" +
		"(CONNECT_DATA=(SERVICE_NAME=" + o.Service + "))" + security + ")"
}
