package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"clothiq/internal/domain"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit the local profile",
	}
	cmd.AddCommand(profileShowCmd(), profileUpdateCmd(), profileSetImageCmd())
	return cmd
}

func profileShowCmd() *cobra.Command {
	var reveal bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the stored profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := wire.Profile.LoadProfile(cmd.Context())
			if err != nil {
				return err
			}
			printProfile(cmd, p, reveal)
			return nil
		},
	}
	cmd.Flags().BoolVar(&reveal, "reveal", false, "print the password in clear")
	return cmd
}

func profileUpdateCmd() *cobra.Command {
	var upd domain.ProfileUpdate
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Edit profile fields; omitted fields keep their value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := wire.Profile.UpdateProfile(cmd.Context(), upd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile information updated.")
			printProfile(cmd, p, false)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&upd.Name, "name", "", "full name; first word is the first name")
	f.StringVar(&upd.Email, "email", "", "email address")
	f.StringVar(&upd.Mobile, "mobile", "", "mobile number")
	f.StringVar(&upd.Password, "password", "", "password")
	return cmd
}

func profileSetImageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-image <path|url>",
		Short: "Set the profile picture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Profile.SetProfileImage(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile picture updated.")
			return nil
		},
	}
}

func printProfile(cmd *cobra.Command, p domain.Profile, reveal bool) {
	pw := strings.Repeat("*", len(p.Password))
	if reveal {
		pw = p.Password
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Name:     %s\n", p.Name)
	fmt.Fprintf(out, "Email:    %s\n", p.Email)
	fmt.Fprintf(out, "Mobile:   %s\n", p.Mobile)
	fmt.Fprintf(out, "Password: %s\n", pw)
	if p.Image != "" {
		fmt.Fprintf(out, "Image:    %s\n", p.Image)
	}
}
