// Parser de NFe (procNFe/NFe) para importação de mercadorias.
// Extrai emitente, itens e total; valida a chave de acesso (dígito mod-11).

package nfe

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
)

// Item linha de produto da nota (grupo det/prod).
type Item struct {
	Code      string // cProd
	Name      string // xProd
	Barcode   string // cEAN ("SEM GTIN" vira vazio)
	NCM       string
	Quantity  decimal.Decimal // qCom
	UnitCost  decimal.Decimal // vUnCom
	LineTotal decimal.Decimal // vProd
}

// Invoice nota fiscal eletrônica já interpretada.
type Invoice struct {
	ChaveAcesso string // 44 dígitos, extraída do atributo Id de infNFe
	EmitterCNPJ string
	EmitterName string
	DestCNPJ    string // CNPJ do destinatário; vazio quando a nota não traz dest
	Number      string // nNF
	Series      string // serie
	IssueDate   string // dhEmi cru, informativo
	Items       []Item
	Total       decimal.Decimal // ICMSTot/vNF
}

// Parse interpreta o XML de uma NFe (aceita procNFe ou NFe na raiz).
// strictChave liga a validação do dígito verificador da chave de acesso.
func Parse(xmlData []byte, strictChave bool) (*Invoice, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(xmlData); err != nil {
		return nil, fmt.Errorf("nfe: XML inválido: %w", err)
	}

	infNFe := doc.FindElement("//infNFe")
	if infNFe == nil {
		return nil, fmt.Errorf("nfe: elemento infNFe não encontrado")
	}

	inv := &Invoice{
		ChaveAcesso: strings.TrimPrefix(infNFe.SelectAttrValue("Id", ""), "NFe"),
	}
	if err := validateChave(inv.ChaveAcesso, strictChave); err != nil {
		return nil, err
	}

	if ide := infNFe.FindElement("ide"); ide != nil {
		inv.Number = childText(ide, "nNF")
		inv.Series = childText(ide, "serie")
		inv.IssueDate = childText(ide, "dhEmi")
	}

	emit := infNFe.FindElement("emit")
	if emit == nil {
		return nil, fmt.Errorf("nfe: emitente (emit) não encontrado")
	}
	inv.EmitterCNPJ = childText(emit, "CNPJ")
	inv.EmitterName = childText(emit, "xNome")

	if dest := infNFe.FindElement("dest"); dest != nil {
		inv.DestCNPJ = childText(dest, "CNPJ")
	}

	for _, det := range infNFe.FindElements("det") {
		prod := det.FindElement("prod")
		if prod == nil {
			continue
		}
		item, err := parseItem(prod)
		if err != nil {
			return nil, err
		}
		inv.Items = append(inv.Items, item)
	}
	if len(inv.Items) == 0 {
		return nil, fmt.Errorf("nfe: nota sem itens")
	}

	if vNF := infNFe.FindElement("total/ICMSTot/vNF"); vNF != nil {
		total, err := decimal.NewFromString(strings.TrimSpace(vNF.Text()))
		if err != nil {
			return nil, fmt.Errorf("nfe: vNF inválido: %w", err)
		}
		inv.Total = total
	}
	return inv, nil
}

func parseItem(prod *etree.Element) (Item, error) {
	item := Item{
		Code:    childText(prod, "cProd"),
		Name:    childText(prod, "xProd"),
		Barcode: childText(prod, "cEAN"),
		NCM:     childText(prod, "NCM"),
	}
	if strings.EqualFold(item.Barcode, "SEM GTIN") {
		item.Barcode = ""
	}
	if item.Code == "" {
		return item, fmt.Errorf("nfe: item sem cProd")
	}

	var err error
	if item.Quantity, err = decimalChild(prod, "qCom"); err != nil {
		return item, err
	}
	if item.UnitCost, err = decimalChild(prod, "vUnCom"); err != nil {
		return item, err
	}
	if item.LineTotal, err = decimalChild(prod, "vProd"); err != nil {
		return item, err
	}
	if item.Quantity.Sign() <= 0 {
		return item, fmt.Errorf("nfe: item %s com quantidade não positiva", item.Code)
	}
	return item, nil
}

// validateChave confere formato (44 dígitos) e, em modo estrito, o dígito
// verificador mod-11 do último dígito da chave.
func validateChave(chave string, strict bool) error {
	if len(chave) != 44 {
		return fmt.Errorf("nfe: chave de acesso com %d dígitos, esperados 44", len(chave))
	}
	for _, r := range chave {
		if r < '0' || r > '9' {
			return fmt.Errorf("nfe: chave de acesso com caractere não numérico")
		}
	}
	if !strict {
		return nil
	}
	// Pesos 2..9 da direita para a esquerda sobre os 43 primeiros dígitos.
	sum := 0
	weight := 2
	for i := 42; i >= 0; i-- {
		sum += int(chave[i]-'0') * weight
		weight++
		if weight > 9 {
			weight = 2
		}
	}
	dv := 11 - sum%11
	if dv >= 10 {
		dv = 0
	}
	if dv != int(chave[43]-'0') {
		return fmt.Errorf("nfe: dígito verificador da chave inválido")
	}
	return nil
}

func childText(parent *etree.Element, tag string) string {
	if el := parent.FindElement(tag); el != nil {
		return strings.TrimSpace(el.Text())
	}
	return ""
}

func decimalChild(parent *etree.Element, tag string) (decimal.Decimal, error) {
	raw := childText(parent, tag)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("nfe: campo %s ausente", tag)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("nfe: campo %s inválido: %w", tag, err)
	}
	return d, nil
}
