// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ai

import (
	"github.com/ecodeclub/cvhub/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/cvhub/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/cvhub/internal/ai/internal/service/llm/handler/platform/deepseek"
	"github.com/ecodeclub/cvhub/internal/ai/internal/service/llm/handler/platform/zhipu"
	"github.com/ecodeclub/cvhub/internal/ai/internal/service/llm/handler/record"
	"github.com/gotomicro/ego/core/econf"
)

func InitRootHandler(common []handler.Builder) handler.Handler {
	// log -> record -> platform
	return handler.NewCompositionHandler(common, InitPlatformHandler())
}

// InitPlatformHandler 根据配置选择出口平台，没配置就走智谱
func InitPlatformHandler() handler.Handler {
	type Config struct {
		Platform string `yaml:"platform"`
	}
	var cfg Config
	if err := econf.UnmarshalKey("llm", &cfg); err != nil {
		panic(err)
	}
	switch cfg.Platform {
	case "deepseek":
		return InitDeepseek()
	default:
		return InitZhipu()
	}
}

func InitZhipu() *zhipu.Handler {
	type Config struct {
		APIKey string `yaml:"apikey"`
	}
	var cfg Config
	err := econf.UnmarshalKey("zhipu", &cfg)
	if err != nil {
		panic(err)
	}
	h, err := zhipu.NewHandler(cfg.APIKey)
	if err != nil {
		panic(err)
	}
	return h
}

func InitDeepseek() *deepseek.Handler {
	type Config struct {
		APIKey string `yaml:"apikey"`
	}
	var cfg Config
	err := econf.UnmarshalKey("deepseek", &cfg)
	if err != nil {
		panic(err)
	}
	return deepseek.NewHandler(cfg.APIKey)
}

func InitCommonHandlers(log *log.HandlerBuilder, record *record.HandlerBuilder) []handler.Builder {
	return []handler.Builder{log, record}
}
