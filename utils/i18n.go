package utils

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var (
	i18nBundle *i18n.Bundle
	bundleOnce sync.Once
	// Кеш локализаторов для разных языков
	// Кешируются только инструменты перевода, не данные пользователей
	localizerCache = make(map[string]*i18n.Localizer)
	localizerMutex sync.RWMutex
)

type languageContextKey struct{}

// WithLanguage returns a copy of ctx carrying the request language tag
func WithLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, languageContextKey{}, lang)
}

// LanguageFromContext returns the request language stored in ctx ("" if none)
func LanguageFromContext(ctx context.Context) string {
	lang, _ := ctx.Value(languageContextKey{}).(string)
	return lang
}

// InitI18n инициализирует систему интернационализации
func InitI18n() error {
	var err error
	bundleOnce.Do(func() {
		bundle := i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

		if err = loadTranslations(bundle); err != nil {
			return
		}
		i18nBundle = bundle
	})
	return err
}

// loadTranslations загружает все JSON файлы локализации
func loadTranslations(bundle *i18n.Bundle) error {
	localesDir := findLocalesDir()

	// Проверяем существование директории локализаций
	if _, err := os.Stat(localesDir); os.IsNotExist(err) {
		if Logger != nil {
			Logger.Warn("Locales directory not found", zap.String("path", localesDir))
		}
		return nil
	}

	return filepath.Walk(localesDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(path, ".json") {
			jsonFile, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			_, err = bundle.ParseMessageFileBytes(jsonFile, path)
			return err
		}
		return nil
	})
}

// findLocalesDir находит правильную директорию локализации
func findLocalesDir() string {
	// Пробуем разные пути
	paths := []string{
		"locales",       // Обычное использование
		"../locales",    // Для тестов из пакетов верхнего уровня
		"../../locales", // Для тестов из вложенных пакетов
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	// Если ничего не найдено, возвращаем стандартный путь
	return "locales"
}

// getLocalizer возвращает закешированный локализатор или создает новый
func getLocalizer(lang string) *i18n.Localizer {
	// Быстрая проверка с read lock
	localizerMutex.RLock()
	if localizer, ok := localizerCache[lang]; ok {
		localizerMutex.RUnlock()
		return localizer
	}
	localizerMutex.RUnlock()

	localizerMutex.Lock()
	defer localizerMutex.Unlock()

	// Проверяем еще раз после получения write lock (double-check pattern)
	if localizer, ok := localizerCache[lang]; ok {
		return localizer
	}

	// Парсим язык тег
	langTag, err := language.Parse(lang)
	if err != nil {
		langTag = language.English
	}

	localizer := i18n.NewLocalizer(i18nBundle, langTag.String())
	localizerCache[lang] = localizer

	return localizer
}

// TemplateData представляет данные для подстановки в шаблон локализации
type TemplateData map[string]interface{}

// T возвращает локализованную строку по ключу с подстановкой переменных
func T(ctx context.Context, messageID string, data ...TemplateData) string {
	lang := LanguageFromContext(ctx)
	if lang == "" {
		lang = "en"
	}

	if i18nBundle == nil {
		if Logger != nil {
			Logger.Error("i18n bundle is not initialized",
				zap.String("messageID", messageID),
			)
		}
		return messageID
	}

	localizer := getLocalizer(lang)

	config := &i18n.LocalizeConfig{
		MessageID: messageID,
	}
	if len(data) > 0 {
		config.TemplateData = data[0]
	}

	msg, err := localizer.Localize(config)
	if err != nil {
		if Logger != nil {
			Logger.Error("Failed to localize message",
				zap.String("messageID", messageID),
				zap.Error(err),
			)
		}
		return messageID
	}

	return msg
}
