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
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/valpere/quicktran/internal/alfred"
	"github.com/valpere/quicktran/internal/detector"
	"github.com/valpere/quicktran/internal/orchestrator"
)

func runTranslate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	query := queryText(args)
	if query == "" {
		return alfred.Write(out, alfred.Empty())
	}

	// Launchers start a run per keystroke; wait for typing to settle.
	if appCfg.StartupDelay > 0 {
		time.Sleep(appCfg.StartupDelay)
	}

	svc, err := buildService(appCfg, appLog)
	if err != nil {
		return writeFailure(cmd, err)
	}

	orch, err := orchestrator.New(svc, appCfg.OrchestratorConfig(), appLog)
	if err != nil {
		return writeFailure(cmd, err)
	}

	return alfred.Write(out, translateQuery(cmd.Context(), orch, query, appCfg.IconPath, appLog))
}

// translateQuery translates query into its routed target language and
// renders the outcome as launcher items.
func translateQuery(ctx context.Context, orch *orchestrator.Orchestrator, query, iconPath string, log *zap.Logger) alfred.Response {
	targetLang := detector.TargetISO(query)

	result, err := orch.Translate(ctx, query, targetLang)
	if err != nil {
		log.Error("translation failed", zap.String("target_lang", targetLang), zap.Error(err))
		return alfred.Failure(err, iconPath)
	}

	log.Info("translated",
		zap.String("target_lang", targetLang),
		zap.Int("segments", result.Segments),
		zap.Int("failed_segments", result.Failed),
		zap.Duration("latency", result.Latency),
	)
	return alfred.Translation(result.Text, iconPath)
}

// writeFailure shows err to the launcher and still reports it to the caller.
func writeFailure(cmd *cobra.Command, err error) error {
	if werr := alfred.Write(cmd.OutOrStdout(), alfred.Failure(err, appCfg.IconPath)); werr != nil {
		return werr
	}
	return err
}
