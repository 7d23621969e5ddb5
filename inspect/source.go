package inspect

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"runtime"
)

// SourceIndex resolves function values to the doc comment and source
// text of their declaration. It works by mapping the function's program
// counter to a file:line via the runtime, then parsing that file. Parse
// results (including failures) are cached per file path.
//
// Lookup degrades to "not found" whenever the defining source file is
// not present on disk, which is the normal situation for stripped or
// relocated binaries and for runtime-generated functions.
type SourceIndex struct {
	fset  *token.FileSet
	files map[string]*sourceFile
}

type sourceFile struct {
	ast *ast.File
	src []byte
}

// NewSourceIndex returns an empty index.
func NewSourceIndex() *SourceIndex {
	return &SourceIndex{
		fset:  token.NewFileSet(),
		files: make(map[string]*sourceFile),
	}
}

// FuncDoc returns the doc comment of the function declared at pc.
func (s *SourceIndex) FuncDoc(pc uintptr) (string, bool) {
	decl, _, ok := s.declForPC(pc)
	if !ok || decl.Doc == nil {
		return "", false
	}
	return decl.Doc.Text(), true
}

// FuncSource returns the source text of the function declared at pc,
// from the func keyword through the closing brace.
func (s *SourceIndex) FuncSource(pc uintptr) (string, bool) {
	decl, file, ok := s.declForPC(pc)
	if !ok {
		return "", false
	}
	start := s.fset.Position(decl.Pos()).Offset
	end := s.fset.Position(decl.End()).Offset
	if start < 0 || end > len(file.src) || start >= end {
		return "", false
	}
	return string(file.src[start:end]), true
}

func (s *SourceIndex) declForPC(pc uintptr) (*ast.FuncDecl, *sourceFile, bool) {
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return nil, nil, false
	}
	path, line := fn.FileLine(fn.Entry())
	file := s.parse(path)
	if file == nil || file.ast == nil {
		return nil, nil, false
	}
	for _, d := range file.ast.Decls {
		decl, ok := d.(*ast.FuncDecl)
		if !ok {
			continue
		}
		from := s.fset.Position(decl.Pos()).Line
		to := s.fset.Position(decl.End()).Line
		if line >= from && line <= to {
			return decl, file, true
		}
	}
	return nil, nil, false
}

func (s *SourceIndex) parse(path string) *sourceFile {
	if f, ok := s.files[path]; ok {
		return f
	}
	var entry *sourceFile
	if src, err := os.ReadFile(path); err == nil {
		if parsed, err := parser.ParseFile(s.fset, path, src, parser.ParseComments); err == nil {
			entry = &sourceFile{ast: parsed, src: src}
		}
	}
	s.files[path] = entry
	return entry
}
