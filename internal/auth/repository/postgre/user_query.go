package postgre

import (
	"fmt"
	"strings"

	repo "textbook-rag/internal/auth/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneUser.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneUserOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Email != "" {
		conditions = append(conditions, fmt.Sprintf("email = $%d", idx))
		args = append(args, opt.Email)
	}

	if len(conditions) == 0 {
		return "1=0", args
	}
	return strings.Join(conditions, " AND "), args
}
