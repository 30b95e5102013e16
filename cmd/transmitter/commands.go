package main

import (
	"circuits-lab/services"
	"circuits-lab/transmission"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func (a *app) connectUser(ctx context.Context) (*services.UserConnection, error) {
	room, err := a.client.ConnectToRoom(ctx, a.room)
	if err != nil {
		return nil, err
	}
	return room.ConnectToUser(ctx, a.user)
}

func (a *app) userFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&a.user, "user", "u", "", "recipient username or id")
	_ = cmd.MarkFlagRequired("user")
}

func (a *app) sendTextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send-text <text>",
		Short: "Send text to the Packet Handler board",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := a.connectUser(cmd.Context())
			if err != nil {
				return err
			}
			report, err := conn.SendText(cmd.Context(), strings.Join(args, " "))
			printReport(report)
			return err
		},
	}
	a.userFlag(cmd)
	return cmd
}

func (a *app) sendIntCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send-int <value>",
		Short: "Send a non-negative integer as a one packet message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer %q: %w", args[0], err)
			}
			conn, err := a.connectUser(cmd.Context())
			if err != nil {
				return err
			}
			report, err := conn.SendInt(cmd.Context(), value)
			printReport(report)
			return err
		},
	}
	a.userFlag(cmd)
	return cmd
}

func (a *app) sendBinaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send-binary <digits>",
		Short: "Send binary digits (e.g. 1010100) as a single packet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid binary number %q: %w", args[0], err)
			}
			conn, err := a.connectUser(cmd.Context())
			if err != nil {
				return err
			}
			res, err := conn.SendBinary(cmd.Context(), value)
			printReport(transmission.Report{Packets: 1, Emissions: res.Emissions, FailedEmissions: res.Failed})
			return err
		},
	}
	a.userFlag(cmd)
	return cmd
}

func (a *app) pingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Check that the recipient's receiver answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conn, err := a.connectUser(cmd.Context())
			if err != nil {
				return err
			}
			pong, err := conn.Ping(cmd.Context())
			if err != nil {
				return err
			}
			if pong {
				color.Success.Println("pong")
			} else {
				color.Warn.Println("no answer")
			}
			return nil
		},
	}
	a.userFlag(cmd)
	return cmd
}

func (a *app) playersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "players",
		Short: "List players seen on recent room photos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			room, err := a.client.ConnectToRoom(cmd.Context(), a.room)
			if err != nil {
				return err
			}
			players, err := room.FindPlayers(cmd.Context())
			if err != nil {
				return err
			}

			table := newTable("Account ID", "Role")
			for _, id := range players {
				table.Append([]string{strconv.FormatInt(int64(id), 10), strconv.Itoa(room.RoleOf(id))})
			}
			table.Render()
			return nil
		},
	}
}

func (a *app) membersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "members",
		Short: "List the room role list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			room, err := a.client.ConnectToRoom(cmd.Context(), a.room)
			if err != nil {
				return err
			}
			if !room.SupportsCircuits() {
				color.Warn.Printf("%s lacks the circuitsapi tag\n", room.Room().Name)
			}

			table := newTable("Account ID", "Role")
			for _, m := range room.Members() {
				table.Append([]string{strconv.FormatInt(int64(m.AccountID), 10), strconv.Itoa(m.Role)})
			}
			table.Render()
			return nil
		},
	}
}

func newTable(header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	return table
}

func printReport(report transmission.Report) {
	line := fmt.Sprintf("%d packet(s), %d signal(s)", report.Packets, report.Emissions)
	if report.Delivered() {
		color.Success.Println(line)
	} else {
		color.Warn.Printf("%s, %d rejected, send the message again\n", line, report.FailedEmissions)
	}
	for _, d := range report.Dropped {
		color.Warn.Printf("dropped %q at position %d\n", d.Char, d.Position)
	}
}
