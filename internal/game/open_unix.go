//go:build !windows && !darwin

package game

import (
	"os/exec"

	"github.com/pkg/errors"
)

// openURL hands url to the desktop's default handler.
func openURL(url string) error {
	if err := exec.Command("xdg-open", url).Start(); err != nil {
		return errors.Wrap(err, "xdg-open")
	}
	return nil
}
