package commands

// ListExtras is the interface for the list-extras command.
type ListExtras interface {
	Execute(projectDir string) ([]string, error)
}

// ListExtrasCommand lists the optional-dependency groups of a Python project.
type ListExtrasCommand struct {
	reader *ProjectMetadataReader
}

// NewListExtrasCommand creates a new ListExtrasCommand.
func NewListExtrasCommand(reader *ProjectMetadataReader) *ListExtrasCommand {
	return &ListExtrasCommand{reader: reader}
}

func (it *ListExtrasCommand) Execute(projectDir string) ([]string, error) {
	return it.reader.ReadExtras(projectDir)
}
