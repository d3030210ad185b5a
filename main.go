package main

import (
	"github.com/anisan-cli/seriesdex/cmd"
	"github.com/anisan-cli/seriesdex/config"
	"github.com/anisan-cli/seriesdex/internal/cache"
	"github.com/anisan-cli/seriesdex/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	go func() {
		if removed, err := cache.CollectGarbage(); err != nil {
			log.Warn(err)
		} else if removed > 0 {
			log.Infof("removed %d expired series cache entries", removed)
		}
	}()

	cmd.Execute()
}
