package ui

import (
	"strings"

	"fyne.io/fyne/v2/lang"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle     = "app_title"
	KeyTabScanner   = "tab_scanner"
	KeyTabGenerator = "tab_generator"
	KeyTabHistory   = "tab_history"
	KeySettings     = "settings"
	KeyFile         = "file"
	KeyLanguage     = "language"
	KeySave         = "save"
	KeyCancel       = "cancel"
	KeyClose        = "close"
	KeyBrowse       = "browse"

	KeyStartScanning   = "start_scanning"
	KeyStopScanning    = "stop_scanning"
	KeyScanningActive  = "scanning_active"
	KeyScanningIdle    = "scanning_idle"
	KeyScanHint        = "scan_hint"
	KeyManualEntry     = "manual_entry"
	KeySubmitScan      = "submit_scan"
	KeyScanResult      = "scan_result"
	KeyScanAgain       = "scan_again"
	KeyOpenLink        = "open_link"
	KeyCopy            = "copy"
	KeyCopied          = "copied"
	KeyErrorOpenLink   = "error_open_link"
	KeyCategory        = "category"
	KeyContent         = "content"
	KeyGenerate        = "generate"
	KeySavePNG         = "save_png"
	KeyPreviewHint     = "preview_hint"
	KeyForeground      = "foreground"
	KeyBackground      = "background"
	KeySize            = "size"
	KeyNothingToEncode = "nothing_to_encode"
	KeyGenerated       = "generated"
	KeyExported        = "exported"
	KeyExportFailed    = "export_failed"
	KeyReveal          = "reveal"
	KeyChooseColor     = "choose_color"

	KeyHistoryEmpty    = "history_empty"
	KeyClearAll        = "clear_all"
	KeyClearAllConfirm = "clear_all_confirm"
	KeyDelete          = "delete"
	KeyKindScanned     = "kind_scanned"
	KeyKindGenerated   = "kind_generated"
	KeyHistorySaveFail = "history_save_failed"

	KeyDefaultCategory = "default_category"
	KeyHistoryLimit    = "history_limit"
	KeyScanCooldown    = "scan_cooldown"
	KeyAutoOpenResult  = "auto_open_result"
	KeyExportDirectory = "export_directory"
	KeyDefaultStyle    = "default_style"
	KeySettingsSaved   = "settings_saved"
	KeyRestartNeeded   = "restart_needed"

	KeySizeSmall  = "size_small"
	KeySizeMedium = "size_medium"
	KeySizeLarge  = "size_large"

	// KeyCategoryPrefix is joined with a category id, e.g. "category_url"
	KeyCategoryPrefix = "category_"
)

// systemLanguage returns the two-letter code of the OS locale
var systemLanguage = func() string {
	return lang.SystemLocale().LanguageString()
}

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language; unknown languages are ignored
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = strings.ToLower(systemLanguage())
		if len(code) > 2 {
			code = code[:2]
		}
		if _, exists := l.texts[code]; !exists {
			code = "en"
		}
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// CategoryLabel returns the localized label of a category, or fallback
func (l *Localization) CategoryLabel(id, fallback string) string {
	key := KeyCategoryPrefix + id
	if text := l.GetText(key); text != key {
		return text
	}
	return fallback
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:     "QR Master",
		KeyTabScanner:   "Scanner",
		KeyTabGenerator: "Generator",
		KeyTabHistory:   "History",
		KeySettings:     "Settings",
		KeyFile:         "File",
		KeyLanguage:     "Language",
		KeySave:         "Save",
		KeyCancel:       "Cancel",
		KeyClose:        "Close",
		KeyBrowse:       "Browse",

		KeyStartScanning:   "Start scanning",
		KeyStopScanning:    "Stop scanning",
		KeyScanningActive:  "Scanning...",
		KeyScanningIdle:    "Scanner paused",
		KeyScanHint:        "Point the camera at a QR code, or paste its content below",
		KeyManualEntry:     "Paste scanned content",
		KeySubmitScan:      "Scan",
		KeyScanResult:      "Scan Result",
		KeyScanAgain:       "Scan again",
		KeyOpenLink:        "Open link",
		KeyCopy:            "Copy",
		KeyCopied:          "Copied to clipboard",
		KeyErrorOpenLink:   "Cannot open link",
		KeyCategory:        "Type",
		KeyContent:         "Content",
		KeyGenerate:        "Generate",
		KeySavePNG:         "Save PNG",
		KeyPreviewHint:     "Enter content to preview the code",
		KeyForeground:      "Color",
		KeyBackground:      "Background",
		KeySize:            "Size",
		KeyNothingToEncode: "Please enter some content",
		KeyGenerated:       "QR code saved to history",
		KeyExported:        "Image saved",
		KeyExportFailed:    "Failed to save image",
		KeyReveal:          "Reveal",
		KeyChooseColor:     "Choose a color",

		KeyHistoryEmpty:    "No history yet. Scanned and generated codes appear here.",
		KeyClearAll:        "Clear All",
		KeyClearAllConfirm: "Delete all history entries?",
		KeyDelete:          "Delete",
		KeyKindScanned:     "Scanned",
		KeyKindGenerated:   "Generated",
		KeyHistorySaveFail: "History could not be saved",

		KeyDefaultCategory: "Default type",
		KeyHistoryLimit:    "History size (1-10)",
		KeyScanCooldown:    "Scan pause, ms (500-10000)",
		KeyAutoOpenResult:  "Show result after scan",
		KeyExportDirectory: "Image folder",
		KeyDefaultStyle:    "Default style",
		KeySettingsSaved:   "Settings saved successfully!",
		KeyRestartNeeded:   "Some changes apply after restart",

		KeySizeSmall:  "Small",
		KeySizeMedium: "Medium",
		KeySizeLarge:  "Large",

		KeyCategoryPrefix + "text":      "Text",
		KeyCategoryPrefix + "url":       "Website",
		KeyCategoryPrefix + "phone":     "Phone",
		KeyCategoryPrefix + "email":     "Email",
		KeyCategoryPrefix + "address":   "Address",
		KeyCategoryPrefix + "facebook":  "Facebook",
		KeyCategoryPrefix + "instagram": "Instagram",
		KeyCategoryPrefix + "tiktok":    "TikTok",
		KeyCategoryPrefix + "twitter":   "Twitter",
		KeyCategoryPrefix + "snapchat":  "Snapchat",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:     "QR Master",
		KeyTabScanner:   "Сканер",
		KeyTabGenerator: "Генератор",
		KeyTabHistory:   "История",
		KeySettings:     "Настройки",
		KeyFile:         "Файл",
		KeyLanguage:     "Язык",
		KeySave:         "Сохранить",
		KeyCancel:       "Отмена",
		KeyClose:        "Закрыть",
		KeyBrowse:       "Обзор",

		KeyStartScanning:   "Начать сканирование",
		KeyStopScanning:    "Остановить",
		KeyScanningActive:  "Сканирование...",
		KeyScanningIdle:    "Сканер на паузе",
		KeyScanHint:        "Наведите камеру на QR-код или вставьте его содержимое ниже",
		KeyManualEntry:     "Вставьте содержимое кода",
		KeySubmitScan:      "Сканировать",
		KeyScanResult:      "Результат",
		KeyScanAgain:       "Сканировать снова",
		KeyOpenLink:        "Открыть ссылку",
		KeyCopy:            "Копировать",
		KeyCopied:          "Скопировано",
		KeyErrorOpenLink:   "Не удалось открыть ссылку",
		KeyCategory:        "Тип",
		KeyContent:         "Содержимое",
		KeyGenerate:        "Создать",
		KeySavePNG:         "Сохранить PNG",
		KeyPreviewHint:     "Введите содержимое для предпросмотра",
		KeyForeground:      "Цвет",
		KeyBackground:      "Фон",
		KeySize:            "Размер",
		KeyNothingToEncode: "Пожалуйста, введите содержимое",
		KeyGenerated:       "QR-код сохранён в истории",
		KeyExported:        "Изображение сохранено",
		KeyExportFailed:    "Не удалось сохранить изображение",
		KeyReveal:          "Показать",
		KeyChooseColor:     "Выберите цвет",

		KeyHistoryEmpty:    "История пуста. Здесь появятся отсканированные и созданные коды.",
		KeyClearAll:        "Очистить",
		KeyClearAllConfirm: "Удалить всю историю?",
		KeyDelete:          "Удалить",
		KeyKindScanned:     "Сканирован",
		KeyKindGenerated:   "Создан",
		KeyHistorySaveFail: "Не удалось сохранить историю",

		KeyDefaultCategory: "Тип по умолчанию",
		KeyHistoryLimit:    "Размер истории (1-10)",
		KeyScanCooldown:    "Пауза сканера, мс (500-10000)",
		KeyAutoOpenResult:  "Показывать результат",
		KeyExportDirectory: "Папка изображений",
		KeyDefaultStyle:    "Стиль по умолчанию",
		KeySettingsSaved:   "Настройки успешно сохранены!",
		KeyRestartNeeded:   "Некоторые изменения вступят в силу после перезапуска",

		KeySizeSmall:  "Маленький",
		KeySizeMedium: "Средний",
		KeySizeLarge:  "Большой",

		KeyCategoryPrefix + "text":    "Текст",
		KeyCategoryPrefix + "url":     "Сайт",
		KeyCategoryPrefix + "phone":   "Телефон",
		KeyCategoryPrefix + "email":   "Почта",
		KeyCategoryPrefix + "address": "Адрес",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:     "QR Master",
		KeyTabScanner:   "Scanner",
		KeyTabGenerator: "Gerador",
		KeyTabHistory:   "Histórico",
		KeySettings:     "Configurações",
		KeyFile:         "Arquivo",
		KeyLanguage:     "Idioma",
		KeySave:         "Salvar",
		KeyCancel:       "Cancelar",
		KeyClose:        "Fechar",
		KeyBrowse:       "Navegar",

		KeyStartScanning:   "Iniciar leitura",
		KeyStopScanning:    "Parar leitura",
		KeyScanningActive:  "Lendo...",
		KeyScanningIdle:    "Leitor pausado",
		KeyScanHint:        "Aponte a câmera para um QR code ou cole o conteúdo abaixo",
		KeyManualEntry:     "Cole o conteúdo lido",
		KeySubmitScan:      "Ler",
		KeyScanResult:      "Resultado",
		KeyScanAgain:       "Ler novamente",
		KeyOpenLink:        "Abrir link",
		KeyCopy:            "Copiar",
		KeyCopied:          "Copiado",
		KeyErrorOpenLink:   "Não foi possível abrir o link",
		KeyCategory:        "Tipo",
		KeyContent:         "Conteúdo",
		KeyGenerate:        "Gerar",
		KeySavePNG:         "Salvar PNG",
		KeyPreviewHint:     "Digite o conteúdo para ver a prévia",
		KeyForeground:      "Cor",
		KeyBackground:      "Fundo",
		KeySize:            "Tamanho",
		KeyNothingToEncode: "Por favor, digite algum conteúdo",
		KeyGenerated:       "QR code salvo no histórico",
		KeyExported:        "Imagem salva",
		KeyExportFailed:    "Falha ao salvar imagem",
		KeyReveal:          "Mostrar",
		KeyChooseColor:     "Escolha uma cor",

		KeyHistoryEmpty:    "Sem histórico. Códigos lidos e gerados aparecem aqui.",
		KeyClearAll:        "Limpar tudo",
		KeyClearAllConfirm: "Apagar todo o histórico?",
		KeyDelete:          "Apagar",
		KeyKindScanned:     "Lido",
		KeyKindGenerated:   "Gerado",
		KeyHistorySaveFail: "Não foi possível salvar o histórico",

		KeyDefaultCategory: "Tipo padrão",
		KeyHistoryLimit:    "Tamanho do histórico (1-10)",
		KeyScanCooldown:    "Pausa da leitura, ms (500-10000)",
		KeyAutoOpenResult:  "Mostrar resultado após leitura",
		KeyExportDirectory: "Pasta de imagens",
		KeyDefaultStyle:    "Estilo padrão",
		KeySettingsSaved:   "Configurações salvas com sucesso!",
		KeyRestartNeeded:   "Algumas mudanças valem após reiniciar",

		KeySizeSmall:  "Pequeno",
		KeySizeMedium: "Médio",
		KeySizeLarge:  "Grande",

		KeyCategoryPrefix + "text":    "Texto",
		KeyCategoryPrefix + "url":     "Site",
		KeyCategoryPrefix + "phone":   "Telefone",
		KeyCategoryPrefix + "email":   "E-mail",
		KeyCategoryPrefix + "address": "Endereço",
	}
}
