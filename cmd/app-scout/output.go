// Copyright (C) ConfigHub, Inc.
// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/confighub/app-scout/internal/clierr"
	"github.com/confighub/app-scout/pkg/cluster"
	"github.com/confighub/app-scout/pkg/components"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	countStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	itemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
)

var titleCaser = cases.Title(language.English)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(v)
}

// renderComponents writes the derived components in the requested format.
func renderComponents(w io.Writer, comps []components.Component, format string) error {
	switch format {
	case "json":
		return writeJSON(w, comps)
	case "yaml":
		return writeYAML(w, comps)
	case "text":
		if len(comps) == 0 {
			fmt.Fprintln(w, clierr.NothingFound("components"))
			return nil
		}
		fmt.Fprintln(w, headerStyle.Render("Components"))
		fmt.Fprintln(w, countStyle.Render(fmt.Sprintf("%d found", len(comps))))
		for _, c := range comps {
			fmt.Fprintf(w, "  %s %s\n", itemStyle.Render("●"), titleCaser.String(c.Name))
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// renderPods writes the pod inventory in the requested format.
func renderPods(w io.Writer, pods []cluster.PodInfo, format string) error {
	switch format {
	case "json":
		return writeJSON(w, pods)
	case "yaml":
		return writeYAML(w, pods)
	case "table":
		if len(pods) == 0 {
			fmt.Fprintln(w, clierr.NothingFound("pods"))
			return nil
		}
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Namespace", "Name", "IP"})
		for _, p := range pods {
			table.Append([]string{p.Namespace, p.Name, p.IP})
		}
		table.Render()
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// renderWorkloads writes the deployment inventory in the requested format.
func renderWorkloads(w io.Writer, workloads []cluster.WorkloadInfo, format string) error {
	switch format {
	case "json":
		return writeJSON(w, workloads)
	case "yaml":
		return writeYAML(w, workloads)
	case "table":
		if len(workloads) == 0 {
			fmt.Fprintln(w, clierr.NothingFound("deployments"))
			return nil
		}
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Namespace", "Name", "Replicas", "Images"})
		for _, wl := range workloads {
			table.Append([]string{
				wl.Namespace,
				wl.Name,
				fmt.Sprintf("%d", wl.Replicas),
				strings.Join(wl.Images, ", "),
			})
		}
		table.Render()
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
