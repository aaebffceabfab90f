package glyphcli

import (
	"path/filepath"
	"strings"
)

type exportExtension string

const (
	SVG  exportExtension = ".svg"
	PNG  exportExtension = ".png"
	JSON exportExtension = ".json"
)

var SUPPORTED_EXTENSIONS = []exportExtension{SVG, PNG, JSON}

func getExportExtension(outputPath string) exportExtension {
	ext := exportExtension(strings.ToLower(filepath.Ext(outputPath)))
	for _, kext := range SUPPORTED_EXTENSIONS {
		if kext == ext {
			return ext
		}
	}
	// default is svg
	return SVG
}

func getOutputFormat(stdoutFormat, outputPath string) (exportExtension, bool) {
	if outputPath == "-" {
		if stdoutFormat == "" {
			return SVG, true
		}
		ext := exportExtension("." + strings.TrimPrefix(strings.ToLower(stdoutFormat), "."))
		for _, kext := range SUPPORTED_EXTENSIONS {
			if kext == ext {
				return ext, true
			}
		}
		return "", false
	}
	return getExportExtension(outputPath), true
}

// newExt must include leading .
func renameExt(fp string, newExt string) string {
	ext := filepath.Ext(fp)
	if ext == "" {
		return fp + newExt
	}
	return strings.TrimSuffix(fp, ext) + newExt
}
