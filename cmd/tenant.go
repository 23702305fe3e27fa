// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/internal/types"
	"github.com/xr50-syn/XR5.0TrainingAssetRepository-sub000/pkg/tenant"
)

var tenantCmd = &cobra.Command{
	Use:   "tenant",
	Short: "Manage tenants",
	Long:  `Manage tenants directly against the control and tenant databases configured in the environment.`,
}

// withTenants runs fn against an in-process tenant service.
func withTenants(cmd *cobra.Command, fn func(context.Context, tenant.ServiceInterface) error) error {
	dsn, _ := cmd.Flags().GetString("dsn")

	specs, err := loadSpecs(dsn)
	if err != nil {
		return err
	}

	ctx := tenant.WithActor(cmd.Context(), "cli")
	a, err := newApp(ctx, specs)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a.services.Tenants)
}

func printJSON(cmd *cobra.Command, v interface{}) (bool, error) {
	format, _ := cmd.Flags().GetString("format")
	if format != "json" {
		return false, nil
	}
	return true, json.NewEncoder(cmd.OutOrStdout()).Encode(v)
}

func printTenants(out io.Writer, tenants ...*types.Tenant) error {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tGROUP\tSTORAGE\tLOCATION\tACTIVE\tCREATED_AT")
	for _, t := range tenants {
		location := t.Directory
		if t.StorageKind == types.StorageKindS3 {
			location = t.S3BucketName + " (" + t.S3BucketRegion + ")"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%v\t%s\n", t.Name, t.Group, t.StorageKind, location, t.Active, t.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func printTables(cmd *cobra.Command, verb string, tables []string) error {
	if ok, err := printJSON(cmd, map[string][]string{"tables": nonNil(tables)}); ok {
		return err
	}
	if len(tables) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "no tables %s\n", verb)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "tables %s: %s\n", verb, strings.Join(tables, ", "))
	return nil
}

var createTenantCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Register a tenant and provision its database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()

		t := &types.Tenant{Name: args[0]}
		storageKind, _ := f.GetString("storage")
		t.StorageKind = types.StorageKind(storageKind)
		t.Group, _ = f.GetString("group")
		t.Description, _ = f.GetString("description")
		t.OwnerName, _ = f.GetString("owner-name")
		t.S3BucketName, _ = f.GetString("bucket")
		t.S3BucketRegion, _ = f.GetString("region")
		t.S3BucketARN, _ = f.GetString("bucket-arn")
		t.Directory, _ = f.GetString("directory")
		t.WebDAVEndpoint, _ = f.GetString("webdav-endpoint")

		var owner *types.NewUser
		if login, _ := f.GetString("admin-login"); login != "" {
			owner = &types.NewUser{Login: login}
			owner.Password, _ = f.GetString("admin-password")
			owner.Email, _ = f.GetString("admin-email")
			owner.DisplayName, _ = f.GetString("admin-name")
		}

		return withTenants(cmd, func(ctx context.Context, s tenant.ServiceInterface) error {
			created, err := s.CreateTenant(ctx, t, owner)
			if err != nil {
				return fmt.Errorf("failed to create tenant: %w", err)
			}
			if ok, err := printJSON(cmd, created); ok {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Tenant created: %s\n", created.Name)
			return nil
		})
	},
}

var listTenantsCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered tenants",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTenants(cmd, func(ctx context.Context, s tenant.ServiceInterface) error {
			tenants, err := s.ListTenants(ctx)
			if err != nil {
				return fmt.Errorf("failed to list tenants: %w", err)
			}
			if ok, err := printJSON(cmd, tenants); ok {
				return err
			}
			return printTenants(cmd.OutOrStdout(), tenants...)
		})
	},
}

var getTenantCmd = &cobra.Command{
	Use:   "get [name]",
	Short: "Show a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTenants(cmd, func(ctx context.Context, s tenant.ServiceInterface) error {
			t, err := s.GetTenant(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get tenant: %w", err)
			}
			if ok, err := printJSON(cmd, t); ok {
				return err
			}
			return printTenants(cmd.OutOrStdout(), t)
		})
	},
}

var deleteTenantCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Deactivate a tenant, or remove it and its database with --completely",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		completely, _ := cmd.Flags().GetBool("completely")

		return withTenants(cmd, func(ctx context.Context, s tenant.ServiceInterface) error {
			if err := s.DeleteTenant(ctx, args[0], completely); err != nil {
				return fmt.Errorf("failed to delete tenant: %w", err)
			}
			if completely {
				fmt.Fprintf(cmd.OutOrStdout(), "Tenant deleted with its database: %s\n", args[0])
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Tenant deactivated: %s\n", args[0])
			}
			return nil
		})
	},
}

var repairTenantCmd = &cobra.Command{
	Use:   "repair [name]",
	Short: "Create the tables missing from a tenant database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTenants(cmd, func(ctx context.Context, s tenant.ServiceInterface) error {
			created, err := s.RepairTenant(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to repair tenant: %w", err)
			}
			return printTables(cmd, "created", created)
		})
	},
}

var rebuildTenantCmd = &cobra.Command{
	Use:   "rebuild [name]",
	Short: "Drop and recreate every table of a tenant database, deleting its data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		accept, _ := cmd.Flags().GetBool("accept-data-loss")

		return withTenants(cmd, func(ctx context.Context, s tenant.ServiceInterface) error {
			created, err := s.RebuildTenant(ctx, args[0], accept)
			if err != nil {
				return fmt.Errorf("failed to rebuild tenant: %w", err)
			}
			return printTables(cmd, "recreated", created)
		})
	},
}

var tenantTablesCmd = &cobra.Command{
	Use:   "tables [name]",
	Short: "List the tables of a tenant database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTenants(cmd, func(ctx context.Context, s tenant.ServiceInterface) error {
			tables, err := s.ListTenantTables(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to list tables: %w", err)
			}
			return printTables(cmd, "present", tables)
		})
	},
}

var tenantUsersCmd = &cobra.Command{
	Use:   "users [name]",
	Short: "List the users of a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTenants(cmd, func(ctx context.Context, s tenant.ServiceInterface) error {
			users, err := s.ListTenantUsers(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}
			if ok, err := printJSON(cmd, users); ok {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "ID\tLOGIN\tNAME\tEMAIL\tADMIN")
			for _, u := range users {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%v\n", u.ID, u.Login, u.DisplayName, u.Email, u.Admin)
			}
			return w.Flush()
		})
	},
}

var addTenantUserCmd = &cobra.Command{
	Use:   "add-user [name] [login]",
	Short: "Add a user to a tenant",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()

		u := &types.NewUser{Login: args[1]}
		u.Password, _ = f.GetString("password")
		u.Email, _ = f.GetString("email")
		u.DisplayName, _ = f.GetString("name")
		u.Admin, _ = f.GetBool("admin")

		return withTenants(cmd, func(ctx context.Context, s tenant.ServiceInterface) error {
			created, err := s.AddTenantUser(ctx, args[0], u)
			if err != nil {
				return fmt.Errorf("failed to add user: %w", err)
			}
			if ok, err := printJSON(cmd, created); ok {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "User created: %s (ID: %s)\n", created.Login, created.ID)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(tenantCmd)

	tenantCmd.PersistentFlags().String("dsn", "", "PostgreSQL DSN of the control database, defaults to $DSN")
	tenantCmd.PersistentFlags().StringP("format", "f", "text", "Output format (text or json)")

	tenantCmd.AddCommand(createTenantCmd)
	tenantCmd.AddCommand(listTenantsCmd)
	tenantCmd.AddCommand(getTenantCmd)
	tenantCmd.AddCommand(deleteTenantCmd)
	tenantCmd.AddCommand(repairTenantCmd)
	tenantCmd.AddCommand(rebuildTenantCmd)
	tenantCmd.AddCommand(tenantTablesCmd)
	tenantCmd.AddCommand(tenantUsersCmd)
	tenantCmd.AddCommand(addTenantUserCmd)

	createTenantCmd.Flags().String("storage", string(types.StorageKindOwnCloud), "Storage kind, S3 or OwnCloud")
	createTenantCmd.Flags().String("group", "", "Tenant group")
	createTenantCmd.Flags().String("description", "", "Tenant description")
	createTenantCmd.Flags().String("owner-name", "", "Owner reference, defaults to the admin login")
	createTenantCmd.Flags().String("bucket", "", "S3 bucket name")
	createTenantCmd.Flags().String("region", "", "S3 bucket region")
	createTenantCmd.Flags().String("bucket-arn", "", "S3 bucket ARN")
	createTenantCmd.Flags().String("directory", "", "OwnCloud directory")
	createTenantCmd.Flags().String("webdav-endpoint", "", "WebDAV endpoint of the tenant, defaults to $WEBDAV_ENDPOINT")
	createTenantCmd.Flags().String("admin-login", "", "Login of the first admin user")
	createTenantCmd.Flags().String("admin-password", "", "Password of the first admin user")
	createTenantCmd.Flags().String("admin-email", "", "Email of the first admin user")
	createTenantCmd.Flags().String("admin-name", "", "Display name of the first admin user")

	deleteTenantCmd.Flags().Bool("completely", false, "Drop the tenant database and remove the registry entry")
	rebuildTenantCmd.Flags().Bool("accept-data-loss", false, "Confirm that all tenant data is deleted")

	addTenantUserCmd.Flags().String("password", "", "Password of the user")
	addTenantUserCmd.Flags().String("email", "", "Email of the user")
	addTenantUserCmd.Flags().String("name", "", "Display name of the user")
	addTenantUserCmd.Flags().Bool("admin", false, "Grant admin rights")
	_ = addTenantUserCmd.MarkFlagRequired("password")
}
