package catalog

import (
	"encoding/xml"
	"path/filepath"
	"strings"

	"go.trai.ch/weave/internal/core/domain"
)

// msbuildProjectName is the placeholder that makes an assembly take its project file's name.
const msbuildProjectName = "$(MSBuildProjectName)"

// LoadPrebuilt reads the project file declared by a prebuilt package. It returns nil
// when the package declares none.
func (c *Catalog) LoadPrebuilt(name, dir string, meta *domain.PackageMetadata) (*domain.PrebuiltProjectInfo, error) {
	if meta == nil || meta.PrebuiltPath == "" {
		return nil, nil //nolint:nilnil // no descriptor declared
	}

	path := meta.PrebuiltPath
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}

	info, err := c.fs.Stat(path)
	if err != nil || info.IsDir() {
		return nil, domain.Annotate(domain.ErrPrebuiltDescriptorMissing,
			"package", name,
			"path", path,
			"referenced_by", meta.ConfigPath,
		)
	}

	data, err := c.fs.ReadFile(path)
	if err != nil {
		return nil, domain.Annotate(domain.ErrPrebuiltDescriptorMissing, "package", name, "path", path, "cause", err.Error())
	}

	var proj projectFile
	if err := xml.Unmarshal(data, &proj); err != nil {
		return nil, domain.Annotate(domain.ErrPrebuiltDescriptorInvalid, "package", name, "path", path, "cause", err.Error())
	}

	assembly := assemblyName(&proj)
	if assembly != "" && assembly != msbuildProjectName && !strings.EqualFold(assembly, name) {
		return nil, domain.Annotate(domain.ErrPrebuiltNameMismatch,
			"package", name,
			"assembly", assembly,
			"path", path,
		)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if !strings.EqualFold(base, name) {
		return nil, domain.Annotate(domain.ErrPrebuiltNameMismatch,
			"package", name,
			"project_file", filepath.Base(path),
			"path", path,
		)
	}

	return &domain.PrebuiltProjectInfo{
		Path:          path,
		Configuration: meta.PrebuiltConfig,
		AssemblyName:  assembly,
		Dependencies:  projectReferences(&proj),
	}, nil
}

func assemblyName(proj *projectFile) string {
	for _, pg := range proj.PropertyGroups {
		if name := strings.TrimSpace(pg.AssemblyName); name != "" {
			return name
		}
	}
	return ""
}

// projectReferences returns the referenced project names. The Name element wins over the
// file name of the Include path.
func projectReferences(proj *projectFile) []string {
	var deps []string
	for _, ig := range proj.ItemGroups {
		for _, ref := range ig.ProjectReferences {
			name := strings.TrimSpace(ref.Name)
			if name == "" {
				include := strings.ReplaceAll(ref.Include, `\`, "/")
				name = strings.TrimSuffix(filepath.Base(include), filepath.Ext(include))
			}
			if name != "" && name != "." {
				deps = append(deps, name)
			}
		}
	}
	return deps
}
