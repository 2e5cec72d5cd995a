package notify

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/azozal-iraqi/Skystore/models"
)

// markdownEscaper neutralises Telegram legacy-Markdown control characters.
// Order fields are customer input and must never be interpolated raw.
var markdownEscaper = strings.NewReplacer(
	"_", "\\_",
	"*", "\\*",
	"`", "\\`",
	"[", "\\[",
)

func EscapeMarkdown(s string) string { return markdownEscaper.Replace(s) }

// NormalizePhone maps an Iraqi local number to international form: a leading
// "0" is replaced by the "964" country code, a number already carrying the
// code is kept, anything else gets the code prepended.
func NormalizePhone(phone string) string {
	switch {
	case strings.HasPrefix(phone, "0"):
		return "964" + phone[1:]
	case strings.HasPrefix(phone, "964"):
		return phone
	default:
		return "964" + phone
	}
}

func formatTotal(total float64) string {
	return strconv.FormatFloat(total, 'f', -1, 64)
}

// CustomerMessage is the confirmation text placed behind the WhatsApp
// click-to-chat link.
func CustomerMessage(o models.Order) string {
	return fmt.Sprintf("السلام عليكم\n"+
		"فريق Sky Store لتأكيد الطلبات 🤍\n"+
		"🧾 تفاصيل الطلب:\n"+
		"📍 المحافظة: %s\n"+
		"📍 المنطقة: %s\n"+
		"📞 رقم الهاتف: %s\n"+
		"📦 المنتجات: %s\n"+
		"💰 السعر النهائي: %s\n"+
		"⏰ Order Time: %s\n"+
		"✅ تم تأكيد الطلب\n"+
		"سيتم تجهيز الطلب وشحنه إلى عنوانكم في أقرب وقت ممكن 🚚\n"+
		"شكرًا لاختياركم Sky Store 🤍",
		o.Governorate, o.Area, o.Phone, o.Items, formatTotal(o.Total), o.Time)
}

// WhatsAppLink builds the wa.me deep link carrying the customer confirmation.
func WhatsAppLink(o models.Order) string {
	return "https://wa.me/" + NormalizePhone(o.Phone) + "?text=" + url.QueryEscape(CustomerMessage(o))
}

// AdminMessage is the internal Telegram notification for a new order. All
// customer-supplied fields are Markdown-escaped.
func AdminMessage(o models.Order) string {
	return fmt.Sprintf("🌟 *طلب جديد من Sky Store* 🌟\n\n"+
		"👤 *الزبون:* %s\n"+
		"📦 *المنتجات:* %s\n"+
		"💰 *الإجمالي:* %s\n\n"+
		"📍 *الموقع:* %s - %s\n"+
		"📞 *الهاتف:* `%s`\n\n"+
		"⏰ *Order Time:* %s\n\n"+
		"✅ [تأكيد عبر واتساب](%s)",
		EscapeMarkdown(o.CustomerName),
		EscapeMarkdown(o.Items),
		formatTotal(o.Total),
		EscapeMarkdown(o.Governorate),
		EscapeMarkdown(o.Area),
		EscapeMarkdown(o.Phone),
		o.Time,
		WhatsAppLink(o))
}
