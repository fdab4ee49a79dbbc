package report

import (
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/inkblot-backend/internal/domain"
	"github.com/heartmarshall/inkblot-backend/internal/scoring"
)

// Fields flattens s into a name to value map keyed by dotted JSON paths,
// e.g. "location.Zf" or "core.EB". Criterion vectors are rendered in their
// printed form and the approach row is keyed by Roman card numeral.
func Fields(s domain.StructuralSummary) (map[string]any, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal summary: %w", err)
	}
	var tree map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("unmarshal summary: %w", err)
	}
	delete(tree, "approach")
	delete(tree, "indices")

	out := make(map[string]any, 256)
	flatten(out, "", tree)

	for i, app := range s.Approach {
		out["approach."+scoring.Card(i+1).Roman()] = app
	}

	idx := s.Indices
	out["indices.PTI"] = idx.PTI.Render()
	out["indices.sum_PTI"] = idx.SumPTI
	out["indices.DEPI"] = idx.DEPI.Render()
	out["indices.sum_DEPI"] = idx.SumDEPI
	out["indices.DEPI_positive"] = idx.DEPIPositive
	out["indices.CDI"] = idx.CDI.Render()
	out["indices.sum_CDI"] = idx.SumCDI
	out["indices.CDI_positive"] = idx.CDIPositive
	out["indices.S-CON"] = idx.SCON.Render()
	out["indices.sum_S-CON"] = idx.SumSCON
	out["indices.S-CON_positive"] = idx.SCONPositive
	out["indices.HVI_premise"] = idx.HVIPremise
	out["indices.HVI"] = idx.HVI.Render()
	out["indices.sum_HVI"] = idx.SumHVI
	out["indices.HVI_except"] = idx.HVIExcept
	out["indices.HVI_positive"] = idx.HVIPositive
	out["indices.OBS"] = idx.OBS.Render()
	out["indices.OBS_positive"] = idx.OBSPositive

	return out, nil
}

func flatten(out map[string]any, prefix string, node map[string]any) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if child, ok := v.(map[string]any); ok {
			flatten(out, key, child)
			continue
		}
		out[key] = v
	}
}
