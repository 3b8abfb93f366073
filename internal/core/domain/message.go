package domain

// MessageType tags a result message handed back to the host build tool.
type MessageType string

const (
	// MessageDependency asks the host to watch a single file.
	MessageDependency MessageType = "dependency"
	// MessageDirDependency asks the host to watch files under Dir matching Glob.
	MessageDirDependency MessageType = "dir-dependency"
)

// Message is a dependency edge reported to the host build tool.
type Message struct {
	Type   MessageType
	Plugin string
	Parent string
	File   string
	Dir    string
	Glob   string
}

// DependencyMessage builds a file dependency edge from parent to file.
func DependencyMessage(plugin, parent, file string) Message {
	return Message{Type: MessageDependency, Plugin: plugin, Parent: parent, File: file}
}

// DirDependencyMessage builds a directory dependency edge from parent to the files
// under dir matching glob.
func DirDependencyMessage(plugin, parent, dir, glob string) Message {
	return Message{Type: MessageDirDependency, Plugin: plugin, Parent: parent, Dir: dir, Glob: glob}
}

// DependencyFiles returns the files of all dependency messages, in order, without duplicates.
func DependencyFiles(messages []Message) []string {
	seen := make(map[string]struct{}, len(messages))
	files := make([]string, 0, len(messages))
	for _, m := range messages {
		if m.Type != MessageDependency || m.File == "" {
			continue
		}
		if _, ok := seen[m.File]; ok {
			continue
		}
		seen[m.File] = struct{}{}
		files = append(files, m.File)
	}
	return files
}
