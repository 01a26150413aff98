package main

import (
	"fmt"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"strings"
	"time"
	"tunefed/dal"
	"tunefed/shared"
)

var (
	primaryColor   = lipgloss.Color("#FF79C6")
	secondaryColor = lipgloss.Color("#8BE9FD")
	accentColor    = lipgloss.Color("#50FA7B")
	warningColor   = lipgloss.Color("#FFB86C")
	mutedColor     = lipgloss.Color("#6272A4")

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2).
			MarginBottom(1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Width(20)

	valueStyle = lipgloss.NewStyle().
			Bold(true)

	accentValueStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true)

	warningValueStyle = lipgloss.NewStyle().
				Foreground(warningColor).
				Bold(true)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(secondaryColor).
			Padding(0, 1)

	rowStyle = lipgloss.NewStyle().
			Padding(0, 1)
)

const statusMaxPeers = 20

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show peers, tracks, followers and the delivery queue from the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := shared.LoadConfig()
			logger = initLogger(cfg)
			repo := dal.NewRepo(cfg, logger)
			repo.InitUpdateDb()
			defer repo.Close()

			out, err := renderStatus(cfg, repo, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func statusRow(label string, value string, style lipgloss.Style) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), style.Render(value))
}

func renderStatus(cfg *shared.Config, repo dal.IRepo, now time.Time) (string, error) {

	sites, err := repo.GetPeerSites()
	if err != nil {
		return "", err
	}
	tracks, err := repo.GetNetworkTracks()
	if err != nil {
		return "", err
	}
	followers, err := repo.GetFollowerCount(true)
	if err != nil {
		return "", err
	}
	allFollowers, err := repo.GetFollowerCount(false)
	if err != nil {
		return "", err
	}
	queueLen, err := repo.GetDeliveryQueueLength()
	if err != nil {
		return "", err
	}

	queueStyle := accentValueStyle
	if queueLen > 0 {
		queueStyle = warningValueStyle
	}
	summary := strings.Join([]string{
		titleStyle.Render("Tunefed @ " + cfg.Host),
		statusRow("Known peers", fmt.Sprintf("%d", len(sites)), valueStyle),
		statusRow("Network tracks", fmt.Sprintf("%d", len(tracks)), valueStyle),
		statusRow("Active followers", fmt.Sprintf("%d", followers), accentValueStyle),
		statusRow("Dead followers", fmt.Sprintf("%d", allFollowers-followers), valueStyle),
		statusRow("Pending deliveries", fmt.Sprintf("%d", queueLen), queueStyle),
	}, "\n")

	if len(sites) == 0 {
		return panelStyle.Render(summary), nil
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(mutedColor)).
		Headers("SITE", "TITLE", "LAST SEEN").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return rowStyle
		})
	for i, site := range sites {
		if i == statusMaxPeers {
			break
		}
		tbl.Row(site.Url, site.Title, now.Sub(site.LastSeen).Truncate(time.Second).String()+" ago")
	}
	return panelStyle.Render(summary) + "\n" + tbl.Render(), nil
}
