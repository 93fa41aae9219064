package main

import (
	"errors"

	"github.com/spf13/cobra"
)

var errLocalUnsupported = errors.New("local transcoding is not supported; run with --remote against the configured host")

type ingestOptions struct {
	remote    bool
	local     bool
	input     string
	thumbnail string
}

func (o *ingestOptions) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.remote, "remote", false, "Transcode on the configured SSH host after saving")
	cmd.Flags().BoolVar(&o.local, "local", false, "Transcode on this machine (not supported)")
	cmd.Flags().StringVarP(&o.input, "input", "i", "", "Source path relative to the remote upload directory")
	cmd.Flags().StringVarP(&o.thumbnail, "thumbnail", "t", "", "Thumbnail source relative to the remote upload directory")
	cmd.MarkFlagsMutuallyExclusive("remote", "local")
}

func (o *ingestOptions) validate() error {
	if !o.remote && !o.local && (o.input != "" || o.thumbnail != "") {
		return errors.New("--input and --thumbnail require --remote")
	}
	return nil
}
