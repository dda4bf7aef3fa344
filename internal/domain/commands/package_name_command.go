package commands

// PackageName is the interface for the package-name command.
type PackageName interface {
	Execute(projectDir string) (string, error)
}

// PackageNameCommand prints the name a Python project is published under.
type PackageNameCommand struct {
	reader *ProjectMetadataReader
}

// NewPackageNameCommand creates a new PackageNameCommand.
func NewPackageNameCommand(reader *ProjectMetadataReader) *PackageNameCommand {
	return &PackageNameCommand{reader: reader}
}

func (it *PackageNameCommand) Execute(projectDir string) (string, error) {
	return it.reader.ReadName(projectDir)
}
