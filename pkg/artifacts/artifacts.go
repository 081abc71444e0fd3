// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package artifacts resolves contract names into deployable factories, using
// the artifact files produced by a hardhat compilation.
package artifacts

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aia-labs/marketplace-cli/pkg/clierrors"
	"github.com/aia-labs/marketplace-cli/pkg/constants"
	"github.com/ava-labs/libevm/accounts/abi"
	"github.com/ava-labs/libevm/common/hexutil"
	"github.com/spf13/afero"
)

var (
	ErrAmbiguousArtifact = errors.New("multiple artifacts match the contract name")
	ErrAbstractContract  = errors.New("contract has no bytecode, it may be abstract or an interface")
	ErrUnlinkedBytecode  = errors.New("contract bytecode references unlinked libraries")
	ErrUnsupportedFormat = errors.New("unsupported artifact format")
)

type LinkReference struct {
	Start  int `json:"start"`
	Length int `json:"length"`
}

// Artifact is the content of a hardhat artifact file
type Artifact struct {
	Format           string                                `json:"_format"`
	ContractName     string                                `json:"contractName"`
	SourceName       string                                `json:"sourceName"`
	ABI              json.RawMessage                       `json:"abi"`
	Bytecode         string                                `json:"bytecode"`
	DeployedBytecode string                                `json:"deployedBytecode"`
	LinkReferences   map[string]map[string][]LinkReference `json:"linkReferences"`
}

// ContractFactory holds what is needed to create a new instance of a contract
type ContractFactory struct {
	ContractName string
	SourceName   string
	ABI          abi.ABI
	Bytecode     []byte
}

// FullyQualifiedName returns the <source>:<contract> name of the factory contract
func (f *ContractFactory) FullyQualifiedName() string {
	return FullyQualifiedName(f.SourceName, f.ContractName)
}

// DeployData returns the creation bytecode followed by the ABI encoded
// constructor arguments
func (f *ContractFactory) DeployData(args ...interface{}) ([]byte, error) {
	input, err := f.ABI.Pack("", args...)
	if err != nil {
		return nil, fmt.Errorf("failure packing constructor arguments for %s: %w", f.ContractName, err)
	}
	data := make([]byte, 0, len(f.Bytecode)+len(input))
	data = append(data, f.Bytecode...)
	return append(data, input...), nil
}

func FullyQualifiedName(sourceName string, contractName string) string {
	return sourceName + ":" + contractName
}

// Registry looks up artifacts under a root directory of a filesystem
type Registry struct {
	fs   afero.Fs
	root string
}

func NewRegistry(fs afero.Fs, root string) *Registry {
	return &Registry{
		fs:   fs,
		root: root,
	}
}

func (r *Registry) Root() string {
	return r.root
}

// ContractFactory resolves [name], either a bare contract name or a fully
// qualified one (contracts/Foo.sol:Foo), into a factory
func (r *Registry) ContractFactory(name string) (*ContractFactory, error) {
	path, err := r.artifactPath(name)
	if err != nil {
		return nil, err
	}
	artifact, err := LoadArtifact(r.fs, path)
	if err != nil {
		return nil, err
	}
	return artifact.Factory()
}

// ArtifactPaths returns the artifact files matching the bare contract [name]
func (r *Registry) ArtifactPaths(name string) ([]string, error) {
	if exists, err := afero.DirExists(r.fs, r.root); err != nil {
		return nil, err
	} else if !exists {
		return nil, &clierrors.ArtifactNotFoundError{
			ContractName: name,
			Dir:          r.root,
			Err:          fmt.Errorf("artifacts directory does not exist, have the contracts been compiled?"),
		}
	}
	fileName := name + constants.ArtifactSuffix
	matches := []string{}
	err := afero.Walk(r.fs, r.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if info.Name() == constants.BuildInfoDir {
				return filepath.SkipDir
			}
			return nil
		}
		if info.Name() == fileName && !strings.HasSuffix(path, constants.DebugArtifactSuffix) {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failure walking artifacts directory %s: %w", r.root, err)
	}
	sort.Strings(matches)
	return matches, nil
}

func (r *Registry) artifactPath(name string) (string, error) {
	if sourceName, contractName, ok := strings.Cut(name, ":"); ok {
		path := filepath.Join(r.root, filepath.FromSlash(sourceName), contractName+constants.ArtifactSuffix)
		if exists, err := afero.Exists(r.fs, path); err != nil {
			return "", err
		} else if !exists {
			return "", &clierrors.ArtifactNotFoundError{ContractName: name, Dir: r.root}
		}
		return path, nil
	}
	matches, err := r.ArtifactPaths(name)
	if err != nil {
		return "", err
	}
	switch len(matches) {
	case 0:
		return "", &clierrors.ArtifactNotFoundError{ContractName: name, Dir: r.root}
	case 1:
		return matches[0], nil
	}
	candidates := make([]string, 0, len(matches))
	for _, match := range matches {
		rel, err := filepath.Rel(r.root, filepath.Dir(match))
		if err != nil {
			return "", err
		}
		candidates = append(candidates, FullyQualifiedName(filepath.ToSlash(rel), name))
	}
	return "", fmt.Errorf(
		"%w %q, use one of the fully qualified names: %s",
		ErrAmbiguousArtifact,
		name,
		strings.Join(candidates, ", "),
	)
}

// LoadArtifact reads the artifact file at [path]
func LoadArtifact(fs afero.Fs, path string) (*Artifact, error) {
	bs, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failure reading artifact %s: %w", path, err)
	}
	artifact := Artifact{}
	if err := json.Unmarshal(bs, &artifact); err != nil {
		return nil, fmt.Errorf("failure decoding artifact %s: %w", path, err)
	}
	if artifact.Format != "" && artifact.Format != constants.HardhatArtifactFmt {
		return nil, fmt.Errorf("%w %q in %s", ErrUnsupportedFormat, artifact.Format, path)
	}
	if artifact.ContractName == "" {
		return nil, fmt.Errorf("artifact %s has no contract name", path)
	}
	return &artifact, nil
}

// Factory validates the artifact and builds a factory out of it
func (a *Artifact) Factory() (*ContractFactory, error) {
	if libs := a.unlinkedLibraries(); len(libs) > 0 {
		return nil, fmt.Errorf("%w: %s needs %s", ErrUnlinkedBytecode, a.ContractName, strings.Join(libs, ", "))
	}
	bytecode := strings.TrimSpace(a.Bytecode)
	if !strings.HasPrefix(bytecode, "0x") {
		bytecode = "0x" + bytecode
	}
	if bytecode == "0x" {
		return nil, fmt.Errorf("%w: %s", ErrAbstractContract, a.ContractName)
	}
	code, err := hexutil.Decode(bytecode)
	if err != nil {
		return nil, fmt.Errorf("invalid bytecode for %s: %w", a.ContractName, err)
	}
	contractABI := abi.ABI{}
	if len(a.ABI) > 0 {
		contractABI, err = abi.JSON(bytes.NewReader(a.ABI))
		if err != nil {
			return nil, fmt.Errorf("invalid abi for %s: %w", a.ContractName, err)
		}
	}
	return &ContractFactory{
		ContractName: a.ContractName,
		SourceName:   a.SourceName,
		ABI:          contractABI,
		Bytecode:     code,
	}, nil
}

func (a *Artifact) unlinkedLibraries() []string {
	libs := []string{}
	for source, refs := range a.LinkReferences {
		for lib := range refs {
			libs = append(libs, FullyQualifiedName(source, lib))
		}
	}
	sort.Strings(libs)
	return libs
}
