/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/valpere/quicktran/internal/alfred"
	"github.com/valpere/quicktran/internal/config"
	"github.com/valpere/quicktran/internal/segmenter"
)

// runSegment prints the segments a query would be translated in, one launcher
// item per segment. Nothing is sent to the translation backend.
func runSegment(cmd *cobra.Command, args []string) error {
	resp, err := segmentQuery(queryText(args), appCfg)
	if err != nil {
		return err
	}
	return alfred.Write(cmd.OutOrStdout(), resp)
}

func segmentQuery(query string, cfg *config.Config) (alfred.Response, error) {
	if query == "" {
		return alfred.Empty(), nil
	}

	oc := cfg.OrchestratorConfig()
	if !segmenter.IsLongWith(query, oc.Threshold, oc.Newlines) {
		return alfred.List([]string{query}, func(int) string {
			return fmt.Sprintf("short text, %d chars, one request", utf8.RuneCountInString(query))
		}, cfg.IconPath), nil
	}

	segments, err := segmenter.Segment(query, oc.MaxSegmentLength)
	if err != nil {
		return alfred.Response{}, err
	}
	return alfred.List(segments, func(i int) string {
		return fmt.Sprintf("segment %d/%d, %d chars", i+1, len(segments), utf8.RuneCountInString(segments[i]))
	}, cfg.IconPath), nil
}
