//go:build darwin

package game

import (
	"os/exec"

	"github.com/pkg/errors"
)

func openURL(url string) error {
	if err := exec.Command("open", url).Start(); err != nil {
		return errors.Wrap(err, "open")
	}
	return nil
}
