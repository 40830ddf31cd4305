package main

import (
	"slices"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/born-ml/extension/internal/envconfig"
	"github.com/born-ml/extension/internal/extension"
)

func opsHandler(cmd *cobra.Command, args []string) error {
	r, err := extension.Load()
	if err != nil {
		return err
	}

	var data [][]string
	for _, name := range r.Ops() {
		if len(args) > 0 && !strings.HasPrefix(strings.ToLower(name), strings.ToLower(args[0])) {
			continue
		}

		schema, _ := r.Schema(name)
		var backends []string
		for _, key := range r.Backends(name) {
			backends = append(backends, key.String())
		}
		data = append(data, []string{name, schema.String(), strings.Join(backends, ","), r.State(name).String()})
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"NAME", "SCHEMA", "BACKENDS", "STATE"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	return nil
}

func envHandler(cmd *cobra.Command, _ []string) error {
	vals := envconfig.Values()
	var data [][]string
	for _, v := range envconfig.AsMap() {
		data = append(data, []string{v.Name, vals[v.Name], v.Description})
	}
	sortRows(data)

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"NAME", "VALUE", "DESCRIPTION"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()

	return nil
}

func sortRows(rows [][]string) {
	slices.SortFunc(rows, func(x, y []string) int {
		return strings.Compare(x[0], y[0])
	})
}
