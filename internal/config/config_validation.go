// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
)

func (c *RuntimeConfig) validate() error {
	if c.BaseDir == "" {
		return ErrMissingEnvironment
	}

	info, err := os.Stat(c.BaseDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrMissingEnvironment, c.BaseDir)
	}

	return nil
}
