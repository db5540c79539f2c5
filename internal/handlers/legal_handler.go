package handlers

import (
	"errors"
	"html"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/stroydom-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

const (
	defaultSiteName = "СтройДом"
	legalStyle      = `<style>body{font-family:-apple-system,BlinkMacSystemFont,sans-serif;max-width:800px;margin:0 auto;padding:20px;color:#333}h1{color:#1a1a1a}h2{color:#444;margin-top:30px}</style>`
)

type LegalHandler struct {
	settings *services.SettingsService
}

func NewLegalHandler(settings *services.SettingsService) *LegalHandler {
	return &LegalHandler{settings: settings}
}

// siteInfo reads the name and contact email from settings, falling back to
// defaults so the pages render even when the store is down.
func (h *LegalHandler) siteInfo(c *fiber.Ctx) (name, email string) {
	name, email = defaultSiteName, "novosibirsk@kamprok.ru"
	if v, err := h.settings.Get(c.UserContext(), "site_name"); err == nil && v != "" {
		name = v
	} else if err != nil && !errors.Is(err, services.ErrSettingNotFound) {
		slog.Warn("legal page: site_name lookup failed", "error", err)
	}
	if v, err := h.settings.Get(c.UserContext(), "email"); err == nil && v != "" {
		email = v
	}
	return html.EscapeString(name), html.EscapeString(email)
}

func (h *LegalHandler) PrivacyPolicy(c *fiber.Ctx) error {
	name, email := h.siteInfo(c)

	return c.Type("html").SendString(`<!DOCTYPE html>
<html lang="ru"><head><meta charset="utf-8"><title>Политика конфиденциальности - ` + name + `</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
` + legalStyle + `
</head><body>
<h1>Политика конфиденциальности</h1>
<p>Последнее обновление: октябрь 2026</p>
<h2>Какие данные мы собираем</h2>
<p>Через форму обратной связи мы получаем ваше имя, телефон и, по желанию, email, сообщение и интересующую услугу.</p>
<h2>Как мы используем данные</h2>
<p>Данные используются только для того, чтобы ` + name + ` связался с вами и подготовил предложение по строительству.</p>
<h2>Хранение</h2>
<p>Данные хранятся на защищенных серверах и не передаются третьим лицам.</p>
<h2>Удаление</h2>
<p>Чтобы удалить ваши данные, напишите нам на ` + email + `.</p>
</body></html>`)
}

func (h *LegalHandler) TermsOfService(c *fiber.Ctx) error {
	name, email := h.siteInfo(c)

	return c.Type("html").SendString(`<!DOCTYPE html>
<html lang="ru"><head><meta charset="utf-8"><title>Пользовательское соглашение - ` + name + `</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
` + legalStyle + `
</head><body>
<h1>Пользовательское соглашение</h1>
<p>Последнее обновление: октябрь 2026</p>
<h2>Принятие условий</h2>
<p>Используя сайт ` + name + `, вы соглашаетесь с этими условиями.</p>
<h2>Цены</h2>
<p>Стоимость, рассчитанная калькулятором, является предварительной и не является публичной офертой. Точная цена определяется после консультации.</p>
<h2>Контакты</h2>
<p>По вопросам пишите на ` + email + `</p>
</body></html>`)
}
