package variants

import (
	"comercial_xpto/internal/domain/entities"
)

// BuildDrafts produces one SKU draft per attribute combination: code from
// the product name, price/cost defaults, stock zero, active, the
// combination stored verbatim as the attribute map. Drafts carry no id,
// tenant or timestamps — the catalog use case fills those in when it
// actually persists the batch.
//
// productID may be a placeholder when the parent has not been created yet;
// the two-phase write rewrites it before the batch goes out.
func BuildDrafts(productID, productName string, axes []entities.VariationAxis, basePrice, baseCost float64) ([]entities.SKU, error) {
	combos, err := GenerateCombinations(axes)
	if err != nil {
		return nil, err
	}

	drafts := make([]entities.SKU, 0, len(combos))
	for _, combo := range combos {
		drafts = append(drafts, entities.SKU{
			Code:       BuildSKUCode(productName, combo),
			ProductID:  productID,
			Price:      basePrice,
			Stock:      0,
			Cost:       baseCost,
			Active:     true,
			Attributes: combo.Map(),
		})
	}
	return drafts, nil
}

// CollectCodes extracts the code strings of a SKU set, in order, for the
// duplicate validator.
func CollectCodes(skus []entities.SKU) []string {
	codes := make([]string, len(skus))
	for i, s := range skus {
		codes[i] = s.Code
	}
	return codes
}

// AxesFromSKUs rebuilds the variation axes of a product from its existing
// SKUs' attribute maps. Axis order follows the product's declared attribute
// names; values keep first-seen order across the SKU list. Used when a
// product is reopened for editing, since axes are not persisted.
func AxesFromSKUs(axisOrder []string, skus []entities.SKU) []entities.VariationAxis {
	axes := make([]entities.VariationAxis, 0, len(axisOrder))
	for _, name := range axisOrder {
		seen := make(map[string]bool)
		var values []string
		for _, s := range skus {
			v, ok := s.Attributes[name]
			if !ok || seen[v] {
				continue
			}
			seen[v] = true
			values = append(values, v)
		}
		if len(values) > 0 {
			axes = append(axes, entities.VariationAxis{Name: name, Values: values})
		}
	}
	return axes
}
