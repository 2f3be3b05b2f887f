/*
Copyright © 2025 The mibigtaxa authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getNameCmd returns the name command.
func getNameCmd() *cobra.Command {
	var cacheFile string
	var allowDeprecated bool

	nameCmd := &cobra.Command{
		Use:   "name <taxon-id>",
		Short: "Print the scientific name of a taxon",
		Long: `Print the scientific name of a cached taxon.

With --deprecated the lookup also resolves retired taxon IDs through
the merged-ID redirect table.

Examples:
  mibigtaxa name 9606
  mibigtaxa name 499551 --deprecated`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runName(args[0], cacheFile, allowDeprecated)
		},
	}

	nameCmd.Flags().StringVarP(&cacheFile, "cache", "c", "",
		"cache file to query (default: configured cache file)")
	nameCmd.Flags().BoolVarP(&allowDeprecated, "deprecated", "d",
		false, "resolve deprecated taxon IDs")

	return nameCmd
}

func runName(arg, cacheFile string, allowDeprecated bool) error {
	id, err := parseTaxonID(arg)
	if err != nil {
		return err
	}

	cache, err := loadCache(cacheFile)
	if err != nil {
		return err
	}

	name, err := cache.NameByID(id, allowDeprecated)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	fmt.Println(name)
	return nil
}
