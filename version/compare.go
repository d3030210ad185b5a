// Package version compares semantic versions and checks catalog formats against this build.
package version

import (
	"fmt"
	"strings"

	"github.com/anisan-cli/seriesdex/constant"
	"github.com/anisan-cli/seriesdex/log"
	"github.com/samber/lo"
)

type semver struct {
	major, minor, patch int
}

func parse(s string) (semver, error) {
	var v semver
	_, err := fmt.Sscanf(strings.TrimPrefix(strings.TrimSpace(s), "v"), "%d.%d.%d", &v.major, &v.minor, &v.patch)
	if err != nil {
		return semver{}, fmt.Errorf("invalid version %q: %w", s, err)
	}
	return v, nil
}

// Compare returns 1 if a > b, -1 if a < b and 0 if they are equal.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for _, pair := range []lo.Tuple2[int, int]{
		{A: av.major, B: bv.major},
		{A: av.minor, B: bv.minor},
		{A: av.patch, B: bv.patch},
	} {
		if pair.A > pair.B {
			return 1, nil
		}

		if pair.A < pair.B {
			return -1, nil
		}
	}

	return 0, nil
}

// Supports checks a catalog format against CatalogFormat.
// A different major version is an error. A newer minor version only warns, since new fields are ignored.
// An empty format is treated as the current one.
func Supports(format string) error {
	if format == "" {
		return nil
	}

	catalog, err := parse(format)
	if err != nil {
		return err
	}
	supported := lo.Must(parse(constant.CatalogFormat))

	if catalog.major != supported.major {
		return fmt.Errorf("catalog format %s is not supported, this build reads %d.x", format, supported.major)
	}

	if newer, _ := Compare(format, constant.CatalogFormat); newer > 0 {
		log.Warnf("catalog format %s is newer than %s, unknown fields are ignored", format, constant.CatalogFormat)
	}
	return nil
}
