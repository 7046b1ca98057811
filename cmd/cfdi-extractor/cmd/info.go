package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/beevik/etree"
	"github.com/spf13/cobra"
)

// FileInfo is the per-file outcome of the info command
type FileInfo struct {
	File       string `json:"file"`
	Size       int    `json:"size"`
	WellFormed bool   `json:"well_formed"`
	RootTag    string `json:"root_tag,omitempty"`
	Version    string `json:"version,omitempty"`
}

var infoCmd = &cobra.Command{
	Use:   "info [files...]",
	Short: "Show basic information about CFDI files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files found")
	}

	infos := make([]*FileInfo, 0, len(files))
	for _, file := range files {
		infos = append(infos, inspectFile(file))
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(infos)
}

func inspectFile(file string) *FileInfo {
	info := &FileInfo{File: file}

	content, err := os.ReadFile(file)
	if err != nil {
		return info
	}
	info.Size = len(content)

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(content); err != nil {
		return info
	}
	root := doc.Root()
	if root == nil {
		return info
	}

	info.WellFormed = true
	info.RootTag = root.Tag
	info.Version = root.SelectAttrValue("Version", "")
	return info
}
