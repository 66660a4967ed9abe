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
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/valpere/quicktran/internal/config"
	"github.com/valpere/quicktran/internal/translator"
)

// buildService constructs the translation backend selected by cfg.
func buildService(cfg *config.Config, log *zap.Logger) (translator.TranslationService, error) {
	if err := cfg.CheckCredentials(); err != nil {
		return nil, err
	}

	svcCfg := cfg.ServiceConfig()

	switch cfg.Backend {
	case config.BackendOpenAI:
		return translator.NewOpenAIService(svcCfg, log), nil
	case config.BackendOllama:
		return translator.NewOllamaService(svcCfg, log), nil
	case config.BackendGoogle:
		return translator.NewGoogleService(svcCfg, log), nil
	default:
		return nil, fmt.Errorf("unknown backend: %s", cfg.Backend)
	}
}

// queryText joins the launcher arguments into one NFC-normalized query.
func queryText(args []string) string {
	return norm.NFC.String(strings.TrimSpace(strings.Join(args, " ")))
}
