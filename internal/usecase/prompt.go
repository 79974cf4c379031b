package usecase

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"bathroom_quote_saver/internal/domain/entities"
)

// humanizeKey converts a snake_case key into a title-case phrase,
// e.g. "plumbing_rough_in" -> "Plumbing Rough In". The first letter is
// decoded as a rune so multi-byte keys survive intact.
func humanizeKey(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		first, size := utf8.DecodeRuneInString(w)
		words[i] = strings.ToUpper(string(first)) + w[size:]
	}
	return strings.Join(words, " ")
}

func enabledComponentNames(c entities.RenovationComponents) []string {
	keys := c.EnabledKeys()
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, humanizeKey(k))
	}
	return names
}

// selectedSubtasks extracts the enabled sub-task keys per enabled component
// from the free-form detailed_components map. Components without an enabled
// flag or without selected sub-tasks are skipped. Keys come back sorted so
// the prompt is deterministic.
func selectedSubtasks(detailed map[string]interface{}) (components []string, subtasksByComponent map[string][]string) {
	subtasksByComponent = make(map[string][]string)
	for component, raw := range detailed {
		details, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		if enabled, _ := details["enabled"].(bool); !enabled {
			continue
		}
		rawSubtasks, _ := details["subtasks"].(map[string]interface{})
		var selected []string
		for key, v := range rawSubtasks {
			if on, _ := v.(bool); on {
				selected = append(selected, key)
			}
		}
		if len(selected) == 0 {
			continue
		}
		sort.Strings(selected)
		components = append(components, component)
		subtasksByComponent[component] = selected
	}
	sort.Strings(components)
	return components, subtasksByComponent
}

// buildEstimationPrompt composes the single user message sent to the LLM. It
// embeds room dimensions, the enabled components, any selected sub-tasks, any
// non-empty task options and the free-text notes.
func buildEstimationPrompt(req entities.RenovationRequest) string {
	m := req.RoomMeasurements
	components := enabledComponentNames(req.Components)

	componentsText := "None selected"
	if len(components) > 0 {
		componentsText = strings.Join(components, ", ")
	}

	var detailedText strings.Builder
	taskComponents, subtasks := selectedSubtasks(req.DetailedComponents)
	if len(taskComponents) > 0 {
		detailedText.WriteString("\nDetailed Sub-tasks Selected:\n")
		for _, component := range taskComponents {
			names := make([]string, 0, len(subtasks[component]))
			for _, key := range subtasks[component] {
				names = append(names, humanizeKey(key))
			}
			fmt.Fprintf(&detailedText, "- %s: %s\n", humanizeKey(component), strings.Join(names, ", "))
		}
	}

	var optionsText strings.Builder
	if len(req.TaskOptions) > 0 {
		keys := make([]string, 0, len(req.TaskOptions))
		for k := range req.TaskOptions {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		optionsText.WriteString("\nSelected Task Options:\n")
		for _, k := range keys {
			fmt.Fprintf(&optionsText, "- %s: %v\n", humanizeKey(k), req.TaskOptions[k])
		}
	}

	notes := req.AdditionalNotes
	if notes == "" {
		notes = "None"
	}

	return fmt.Sprintf(`Analyze this bathroom renovation project and provide a detailed cost estimate using the specific sub-tasks selected:

Room Details:
- Dimensions: %gm x %gm x %gm
- Floor Area: %.2f square meters
- Volume: %.2f cubic meters

Selected Main Components: %s
%s%s
Client Location: %s
Additional Notes: %s

IMPORTANT: Use the detailed sub-tasks to provide more accurate pricing. Each selected sub-task should influence the cost estimate for that component. Consider:
- Complexity of selected sub-tasks
- Labor time for specific tasks
- Material requirements for each sub-task
- Regional pricing variations

Please provide:
1. Total estimated cost based on selected sub-tasks
2. Cost breakdown for each selected component (considering specific sub-tasks)
3. Cost range (min-max) for each component
4. Analysis notes explaining cost factors and how sub-tasks influence pricing
5. Confidence level of the estimate

Return the response in this JSON format:
{
    "total_cost": 0,
    "breakdown": [
        {
            "component": "component_name",
            "estimated_cost": 0,
            "cost_range_min": 0,
            "cost_range_max": 0,
            "notes": "explanation including sub-task analysis"
        }
    ],
    "analysis": "detailed analysis text mentioning specific sub-tasks and their impact on pricing",
    "confidence": "High/Medium/Low"
}`,
		m.Length, m.Width, m.Height,
		m.FloorArea(), m.Volume(),
		componentsText,
		detailedText.String(), optionsText.String(),
		req.ClientInfo.Address, notes)
}
