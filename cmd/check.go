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
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/valpere/quicktran/internal/alfred"
	"github.com/valpere/quicktran/internal/translator"
)

var checkTimeout time.Duration

// runCheck runs an availability check on the configured backend.
func runCheck(cmd *cobra.Command) error {
	svc, err := buildService(appCfg, appLog)
	if err != nil {
		return writeFailure(cmd, err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), checkTimeout)
	defer cancel()

	resp, checkErr := checkService(ctx, svc, appCfg.IconPath)
	if err := alfred.Write(cmd.OutOrStdout(), resp); err != nil {
		return err
	}
	return checkErr
}

func checkService(ctx context.Context, svc translator.TranslationService, iconPath string) (alfred.Response, error) {
	if err := svc.IsAvailable(ctx); err != nil {
		return alfred.Failure(fmt.Errorf("%s: %w", svc.Name(), err), iconPath), err
	}
	title := fmt.Sprintf("%s is available", svc.Name())
	return alfred.List([]string{title}, func(int) string { return "backend check passed" }, iconPath), nil
}
