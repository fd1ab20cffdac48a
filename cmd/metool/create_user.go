package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spec-kit/me-tool/internal/domain"
	"github.com/spec-kit/me-tool/internal/repository"
	"github.com/spec-kit/me-tool/internal/service"
	"github.com/spec-kit/me-tool/internal/validation"
	apperrors "github.com/spec-kit/me-tool/pkg/util/errorutil"
)

var (
	createUserName     string
	createUserEmail    string
	createUserPassword string
	createUserRole     string
)

var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Create a staff account, typically the first admin",
	RunE:  runCreateUser,
}

func init() {
	createUserCmd.Flags().StringVar(&createUserName, "name", "", "Display name")
	createUserCmd.Flags().StringVar(&createUserEmail, "email", "", "Login email")
	createUserCmd.Flags().StringVar(&createUserPassword, "password", "", "Initial password (min 8 characters)")
	createUserCmd.Flags().StringVar(&createUserRole, "role", string(domain.StaffRoleAdmin), "Role: STAFF or ADMIN")
	_ = createUserCmd.MarkFlagRequired("name")
	_ = createUserCmd.MarkFlagRequired("email")
	_ = createUserCmd.MarkFlagRequired("password")
}

func runCreateUser(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	deps, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer deps.Close()

	orgService := service.NewStaffService(service.OrgDependencies{
		StaffRepo: repository.NewStaffRepository(deps.pg.PoolHandle()),
		TeamRepo:  repository.NewTeamRepository(deps.pg.PoolHandle()),
	}, validation.NewDecoder(nil), deps.cfg.Auth.BcryptCost)

	created, err := orgService.RegisterStaffMember(ctx, validation.Values{
		"name":     createUserName,
		"email":    createUserEmail,
		"password": createUserPassword,
		"role":     createUserRole,
	})
	if err != nil {
		return describeError(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s %s (%s)\n", created.Role, created.Email, created.ID)
	return nil
}

// describeError flattens field errors into one line for the terminal.
func describeError(err error) error {
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || len(domainErr.Fields) == 0 {
		return err
	}
	msg := ""
	for i, field := range domainErr.Fields {
		if i > 0 {
			msg += "; "
		}
		msg += fmt.Sprintf("%s: %s", field.Path, field.Message)
	}
	return errors.New(msg)
}
