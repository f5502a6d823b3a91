package main

import (
	"fmt"

	"github.com/kevinshome/pepper"
)

// Run executes the info command.
// Nothing is written to stdout unless the whole rendering succeeds.
func (c *InfoCmd) Run(deps *Dependencies) error {
	page, err := deps.Fetcher.Fetch(deps.Ctx, pepper.DetailURL(deps.BaseURL, c.ID))
	if err != nil {
		if pepper.ErrorCode(err) == pepper.ENOTFOUND {
			return pepper.Errorf(pepper.ENOTFOUND, "PEP %s not found...", c.ID)
		}
		return err
	}

	header, err := deps.Headers.ExtractHeader(page)
	if err != nil {
		return err
	}

	var abstract string
	if c.Abstract {
		if abstract, err = c.abstract(deps, page); err != nil {
			return err
		}
	}

	fmt.Fprint(deps.Stdout, pepper.FormatHeader(header))
	if abstract != "" {
		fmt.Fprintf(deps.Stdout, "\nAbstract:\n\n%s\n", abstract)
	}

	return nil
}

func (c *InfoCmd) abstract(deps *Dependencies, page string) (string, error) {
	body, err := deps.Abstracts.ExtractAbstract(page)
	if err != nil {
		if pepper.ErrorCode(err) == pepper.ENOTFOUND {
			return "", pepper.Errorf(pepper.ENOTFOUND, "PEP %s has no abstract", c.ID)
		}
		return "", err
	}
	return deps.Converter.Convert(body)
}
