// Package domain contains the core business entities and value objects of
// the EvoMind API: information sources, challenge tasks, orders, the plan
// catalogue, and the shapes of AI-generated content. It also owns the
// identifier and timestamp conventions every other package relies on.
package domain
