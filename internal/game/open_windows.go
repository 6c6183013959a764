//go:build windows

package game

import (
	"os/exec"

	"github.com/pkg/errors"
)

func openURL(url string) error {
	cmd := exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	if err := cmd.Start(); err != nil {
		return errors.Wrap(err, "rundll32")
	}
	return nil
}
