package ports

import "go.trai.ch/weave/internal/core/domain"

// PackageCatalog locates packages on disk and reads their metadata.
//
//go:generate mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks
type PackageCatalog interface {
	// Resolve returns the home directory of the named package.
	// It returns domain.ErrPackageNotFound if no root contains the package.
	Resolve(name string, roots domain.SearchRoots) (string, error)

	// LoadMetadata decodes the package config in dir. A missing config yields defaults.
	LoadMetadata(dir string) (*domain.PackageMetadata, error)

	// LoadPrebuilt reads the prebuilt project descriptor declared by a package.
	LoadPrebuilt(name, dir string, meta *domain.PackageMetadata) (*domain.PrebuiltProjectInfo, error)

	// ListPackages returns the names of every package available in the roots.
	ListPackages(roots domain.SearchRoots) ([]string, error)
}
