package common

import (
	"os"
	"path/filepath"

	"github.com/fleetadm/fleetadm/cmd/fleetadm/config/preferences"
)

type CommonFlags struct {
	Profile      string `flag:"profile" help:"fleet profile name to use"`
	ProfileStore string `flag:"profile-store" help:"path to fleet profile store file"`
	Preferences  string `flag:"preferences" help:"path to preferences file"`
}

type commonFlagDetection struct {
	home string
}

type CommonFlagDetectionOption func(*commonFlagDetection) *commonFlagDetection

func WithHome(home string) CommonFlagDetectionOption {
	return func(opt *commonFlagDetection) *commonFlagDetection {
		opt.home = home
		return opt
	}
}

// Flags builds the default common flag values under the user's home.
func Flags(opt ...CommonFlagDetectionOption) (CommonFlags, error) {
	detparam := commonFlagDetection{
		home: "",
	}
	for _, o := range opt {
		detparam = *o(&detparam)
	}

	home := detparam.home
	if home == "" {
		_home, err := os.UserHomeDir()
		if err != nil {
			_home = ""
		}
		home = _home
	}

	return CommonFlags{
		Profile:      "default",
		ProfileStore: filepath.Join(home, ".fleetadm", "profile"),
		Preferences:  preferences.Path(home),
	}, nil
}

// CredentialsPath is the durable credential tier, kept beside the
// profile store.
func (cf CommonFlags) CredentialsPath() string {
	return filepath.Join(filepath.Dir(cf.ProfileStore), "credentials")
}
