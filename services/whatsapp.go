package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/AV-automacoes/restaurante-bom-prato/entity"
)

// WhatsAppService monta a mensagem do pedido e o link wa.me. O envio em si é
// do cliente: o link abre a conversa já preenchida.
type WhatsAppService struct {
	Number string // destino, ex. 5537998260587
}

func NewWhatsAppService(number string) *WhatsAppService {
	return &WhatsAppService{Number: number}
}

func formatBRL(cents int64) string {
	return fmt.Sprintf("R$ %.2f", float64(cents)/100)
}

// Message gera o texto completo do pedido: bloco do cliente, endereço,
// itens com as escolhas agrupadas, totais, troco e rodapé por forma de
// pagamento.
func (w *WhatsAppService) Message(o *entity.Order) string {
	var b strings.Builder

	b.WriteString("✅ *SEU PEDIDO FOI CONFIRMADO*, e está aguardando produção!\n")
	b.WriteString("Acompanhe abaixo o seu pedido\n\n")

	// cliente
	fmt.Fprintf(&b, "👤 *%s*\n", o.CustomerInfo.Name)
	fmt.Fprintf(&b, "📞 %s\n", o.CustomerInfo.Phone)
	fmt.Fprintf(&b, "💵 %s\n", o.PaymentMethod)

	// endereço
	if o.DeliveryType == entity.DeliveryEntrega {
		fmt.Fprintf(&b, "🏡 %s - %s\n", o.CustomerInfo.StreetAndNumber, o.CustomerInfo.Neighborhood)
		var extra []string
		if o.CustomerInfo.ApartmentDetails != "" {
			extra = append(extra, o.CustomerInfo.ApartmentDetails)
		}
		if o.CustomerInfo.Landmark != "" {
			extra = append(extra, o.CustomerInfo.Landmark)
		}
		if len(extra) > 0 {
			fmt.Fprintf(&b, "• %s\n", strings.Join(extra, " • "))
		}
	} else {
		b.WriteString("🏡 Retirada no local\n")
	}
	b.WriteString("\n")

	// itens
	b.WriteString("»————-« *ITENS* »————-«\n")
	for _, item := range o.Items {
		fmt.Fprintf(&b, "● *%dx %s* (%s)\n", item.Quantity, item.Name, formatBRL(item.Total()))

		for _, sel := range item.Selections {
			if len(sel.Options) == 0 {
				continue
			}
			isSize := strings.EqualFold(sel.GroupName, "tamanho")
			if !isSize {
				fmt.Fprintf(&b, " ↳ *%s:*\n", sel.GroupName)
			}
			for _, opt := range sel.Options {
				prefix := "*1x* "
				if isSize {
					prefix = ""
				}
				price := ""
				if opt.Price > 0 {
					price = fmt.Sprintf(" (%s)", formatBRL(opt.Price))
				}
				fmt.Fprintf(&b, "  ↳ %s%s%s\n", prefix, opt.Name, price)
			}
		}

		if item.Notes != "" {
			fmt.Fprintf(&b, "  ↳ *Observações:* %s\n", item.Notes)
		}
	}
	b.WriteString("\n")

	// total
	b.WriteString("»————-« *Total* »————-«\n")
	if o.DeliveryType == entity.DeliveryEntrega {
		fmt.Fprintf(&b, "*Taxa de Entrega:* %s\n", formatBRL(o.DeliveryFee))
	}
	fmt.Fprintf(&b, "*Valor Total:* %s\n", formatBRL(o.Total))

	if o.PaymentMethod == entity.PaymentDinheiro && o.CashTendered > o.Total {
		fmt.Fprintf(&b, "*Troco para:* %s\n", formatBRL(o.CashTendered))
		fmt.Fprintf(&b, "*Troco:* %s\n", formatBRL(o.CashTendered-o.Total))
	}

	if o.PaymentMethod == entity.PaymentPix {
		b.WriteString("\n*Aguardando pagamento via PIX.*\n")
		fmt.Fprintf(&b, "*Chave PIX:* %s\n", w.Number)
	}

	return b.String()
}

// Link monta a URL wa.me com a mensagem já codificada.
func (w *WhatsAppService) Link(o *entity.Order) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", w.Number, url.QueryEscape(w.Message(o)))
}
