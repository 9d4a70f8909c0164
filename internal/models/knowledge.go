package models

import "time"

// KnowledgeItem is one entry of the sales knowledge base, owned by the
// backend API; this service only proxies and reshapes it.
type KnowledgeItem struct {
	ID          string         `json:"_id"`
	Title       string         `json:"title"`
	Category    string         `json:"category"`
	Content     string         `json:"content"`
	Tags        []string       `json:"tags"`
	Priority    int            `json:"priority"`
	IsActive    bool           `json:"isActive"`
	CreatedBy   string         `json:"createdBy"`
	LastUpdated time.Time      `json:"lastUpdated"`
	Usage       KnowledgeUsage `json:"usage"`
}

// KnowledgeUsage tracks how often an entry is read or folded into scripts.
type KnowledgeUsage struct {
	Views         int `json:"views"`
	UsedInScripts int `json:"usedInScripts"`
}

// KnowledgeStats is the stats overview shape served by the backend.
type KnowledgeStats struct {
	TotalItems    int                      `json:"totalItems"`
	CategoryStats []KnowledgeCategoryStats `json:"categorieStats"`
	RecentItems   []KnowledgeRecentItem    `json:"recentItems"`
}

type KnowledgeCategoryStats struct {
	Category   string `json:"_id"`
	Count      int    `json:"count"`
	TotalViews int    `json:"totalViews"`
	TotalUsage int    `json:"totalUsage"`
}

type KnowledgeRecentItem struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	LastUpdated time.Time `json:"lastUpdated"`
}
