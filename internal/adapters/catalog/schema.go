package catalog

// PackageFile represents the structure of a weave.package.yaml file.
type PackageFile struct {
	FolderType      string       `yaml:"folderType"`
	Dependencies    []string     `yaml:"dependencies"`
	GroupWith       []string     `yaml:"groupWith"`
	Extras          []string     `yaml:"extras"`
	Platforms       []string     `yaml:"platforms"`
	ForcePluginTier bool         `yaml:"forcePluginTier"`
	ForceAssetTier  bool         `yaml:"forceAssetTier"`
	PrebuiltProject *PrebuiltDTO `yaml:"prebuiltProject"`
}

// PrebuiltDTO points at the project file that compiles a package.
type PrebuiltDTO struct {
	Path   string `yaml:"path"`
	Config string `yaml:"config"`
}

// projectFile is the subset of an MSBuild project read for prebuilt packages.
type projectFile struct {
	PropertyGroups []struct {
		AssemblyName string `xml:"AssemblyName"`
	} `xml:"PropertyGroup"`
	ItemGroups []struct {
		ProjectReferences []struct {
			Include string `xml:"Include,attr"`
			Name    string `xml:"Name"`
		} `xml:"ProjectReference"`
	} `xml:"ItemGroup"`
}
