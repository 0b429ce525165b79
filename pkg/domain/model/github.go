package model

import (
	"github.com/m-mizutani/usher/pkg/domain/types"
)

// GitHubUser is the identity the aggregation runs for.
type GitHubUser struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
}

// SourceRepo is a raw record from the authenticated-user or organization
// repository listings. These surfaces report permissions directly as
// booleans, keyed by permission name.
type SourceRepo struct {
	ID          int64
	Name        string
	FullName    string
	Description *string
	HTMLURL     string
	Owner       RepoOwner
	Fork        bool
	StarCount   int
	Permissions map[string]bool
}

// Canonical converts the raw listing record into the canonical repository
// shape, copying the permission booleans as-is.
func (x *SourceRepo) Canonical() *Repository {
	return &Repository{
		ExternalID:  x.ID,
		Name:        x.Name,
		FullName:    x.FullName,
		Description: x.Description,
		URL:         x.HTMLURL,
		Owner:       x.Owner,
		Permissions: RepoPermissions{
			Admin:    x.Permissions["admin"],
			Maintain: x.Permissions["maintain"],
			Push:     x.Permissions["push"],
			Triage:   x.Permissions["triage"],
			Pull:     x.Permissions["pull"],
		},
		StarCount: x.StarCount,
		Fork:      x.Fork,
	}
}

// PullRequestRepo is a raw record from the merged-public-PR search. This
// surface reports only a single coarse permission level.
type PullRequestRepo struct {
	ID          int64
	Name        string
	FullName    string
	Description *string
	HTMLURL     string
	Owner       RepoOwner
	Fork        bool
	StarCount   int
	Permission  types.PermissionLevel
}

// Canonical converts the raw search record into the canonical repository
// shape, expanding the coarse permission level into the boolean set.
func (x *PullRequestRepo) Canonical() *Repository {
	return &Repository{
		ExternalID:  x.ID,
		Name:        x.Name,
		FullName:    x.FullName,
		Description: x.Description,
		URL:         x.HTMLURL,
		Owner:       x.Owner,
		Permissions: PermissionsFromLevel(x.Permission),
		StarCount:   x.StarCount,
		Fork:        x.Fork,
	}
}

// permissionOrder lists levels from least to most privileged. A level
// grants itself and every level below it.
var permissionOrder = []types.PermissionLevel{
	types.PermissionRead,
	types.PermissionTriage,
	types.PermissionWrite,
	types.PermissionMaintain,
	types.PermissionAdmin,
}

// PermissionsFromLevel expands a coarse permission level into the boolean
// permission set. An unknown level yields all-false.
func PermissionsFromLevel(level types.PermissionLevel) RepoPermissions {
	rank := -1
	for i, l := range permissionOrder {
		if l == level {
			rank = i
			break
		}
	}

	return RepoPermissions{
		Pull:     rank >= 0,
		Triage:   rank >= 1,
		Push:     rank >= 2,
		Maintain: rank >= 3,
		Admin:    rank >= 4,
	}
}
