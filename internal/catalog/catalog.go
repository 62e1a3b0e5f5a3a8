// Package catalog is the read-mostly lookup of service templates and
// pricing service types. Templates come from industry presets or operator
// configuration; the pipeline never mutates them.
package catalog

import "geoquote/internal/domain/entities"

// Catalog resolves service ids to their billing parameters and decides
// which measurement channel a service consumes.
type Catalog struct {
	templates map[string]entities.ServiceTemplate
	order     []string
}

// New builds a catalog from a template list. Later duplicates of the same
// service id win, matching operator edits overriding preset entries.
func New(templates []entities.ServiceTemplate) *Catalog {
	c := &Catalog{templates: make(map[string]entities.ServiceTemplate, len(templates))}
	for _, t := range templates {
		if _, exists := c.templates[t.ID]; !exists {
			c.order = append(c.order, t.ID)
		}
		c.templates[t.ID] = t
	}
	return c
}

// Template returns the template for a service id.
func (c *Catalog) Template(serviceID string) (entities.ServiceTemplate, bool) {
	t, ok := c.templates[serviceID]
	return t, ok
}

// Templates returns all templates in their catalog order.
func (c *Catalog) Templates() []entities.ServiceTemplate {
	out := make([]entities.ServiceTemplate, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.templates[id])
	}
	return out
}

// MeasurementChannel reports which measurement output feeds the given
// service: AREA, LENGTH or COUNT. Unknown services consume nothing.
func (c *Catalog) MeasurementChannel(serviceID string) (entities.MeasurementType, bool) {
	t, ok := c.templates[serviceID]
	if !ok {
		return "", false
	}
	return t.MeasurementType, true
}
