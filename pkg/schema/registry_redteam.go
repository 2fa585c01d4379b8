package schema

// Red-team analysis pipeline output shapes. The envelope objects are strict
// so structural typos in the well-known wrapper are caught; the agent-specific
// detail blobs inside stay permissive or free-form.

var severityLevels = []string{"CRITICAL", "HIGH", "MEDIUM", "LOW", "INFO"}

var reportRiskLevels = []string{"CRITICAL", "HIGH", "MEDIUM", "LOW", "INFO", "NONE"}

// findingSeverities excludes INFO and NONE: a synthesized finding always has
// a real severity.
var findingSeverities = []string{"CRITICAL", "HIGH", "MEDIUM", "LOW"}

// riskCategories is the red-team taxonomy. Unknown categories are tolerated
// with a warning rather than rejected.
var riskCategories = []string{
	"reasoning-flaws",
	"assumption-gaps",
	"context-manipulation",
	"authority-exploitation",
	"information-leakage",
	"hallucination-risks",
	"over-confidence",
	"scope-creep",
	"dependency-blindness",
	"temporal-inconsistency",
}

func findingID(name string) Field {
	return Field{Name: name, Type: TypeString, Required: true, Pattern: findingIDPattern}
}

// named returns a copy of f carrying the given field name. Used to reuse a
// shared shape under different keys.
func named(f Field, name string) Field {
	f.Name = name
	return f
}

// attackerFinding is the strict finding shape emitted by the attacker agents.
var attackerFinding = Field{
	Type: TypeObject,
	Fields: []Field{
		findingID("id"),
		{Name: "severity", Type: TypeEnum, Required: true, Enum: severityLevels},
		{Name: "title", Type: TypeString, Required: true},
		{Name: "confidence", Type: TypeConfidence, Required: true},
		{Name: "category", Type: TypeString, Required: true},
		{Name: "target", Type: TypeObject, Required: true, Fields: []Field{
			{Name: "claim_id", Type: TypeString},
			{Name: "claim_text", Type: TypeString},
			{Name: "message_num", Type: TypeInt},
		}},
		{Name: "evidence", Type: TypeObject, Required: true, Fields: []Field{
			{Name: "type", Type: TypeString, Required: true},
			{Name: "description", Type: TypeString},
			{Name: "quote", Type: TypeString},
			{Name: "assumption", Type: TypeString},
			{Name: "why_problematic", Type: TypeString},
		}},
		{Name: "attack_applied", Type: TypeObject, Required: true, Fields: []Field{
			{Name: "style", Type: TypeString, Required: true},
			{Name: "probe", Type: TypeString, Required: true},
		}},
		{Name: "impact", Type: TypeObject, Required: true, Fields: []Field{
			{Name: "if_exploited", Type: TypeString},
			{Name: "if_assumption_fails", Type: TypeString},
			{Name: "affected_claims", Type: TypeList, Elem: &Field{Type: TypeString}},
			{Name: "likelihood", Type: TypeString},
		}},
		{Name: "recommendation", Type: TypeString, Required: true, MinLen: iptr(10),
			WarnIfMissing: "missing 'recommendation' field"},
	},
}

var severityCounts = Field{
	Type: TypeObject,
	Fields: []Field{
		{Name: "critical", Type: TypeInt, Min: fptr(0)},
		{Name: "high", Type: TypeInt, Min: fptr(0)},
		{Name: "medium", Type: TypeInt, Min: fptr(0)},
		{Name: "low", Type: TypeInt, Min: fptr(0)},
		{Name: "info", Type: TypeInt, Min: fptr(0)},
	},
}

func init() {
	register(&Schema{
		Name:    "attacker",
		Version: 1,
		Doc:     "Findings from a reasoning/context/hallucination/scope attacker agent.",
		Root: Field{Type: TypeObject, Strict: true, Fields: []Field{
			{Name: "attack_results", Type: TypeObject, Required: true, Strict: true, Fields: []Field{
				{Name: "attack_type", Type: TypeString, Required: true},
				{Name: "categories_probed", Type: TypeList, WarnEnum: riskCategories,
					Elem: &Field{Type: TypeString}},
				{Name: "findings", Type: TypeList, Required: true, WarnIfEmpty: true,
					Elem: &attackerFinding},
				{Name: "patterns_detected", Type: TypeList, Elem: &Field{
					Type: TypeObject,
					Fields: []Field{
						{Name: "pattern", Type: TypeString, Required: true},
						{Name: "instances", Type: TypeInt, Min: fptr(1), Default: 1},
						{Name: "description", Type: TypeString, Required: true},
						{Name: "systemic_recommendation", Type: TypeString},
					},
				}},
				{Name: "summary", Type: TypeObject, Required: true, Fields: []Field{
					{Name: "total_findings", Type: TypeInt, Min: fptr(0)},
					named(severityCounts, "by_severity"),
					{Name: "highest_risk_claim", Type: TypeString},
					{Name: "primary_weakness", Type: TypeString},
				}},
			}},
		}},
	})

	register(&Schema{
		Name:    "strategy",
		Version: 1,
		Doc:     "Attack plan from the attack-strategist agent.",
		Root: Field{Type: TypeObject, Strict: true, Fields: []Field{
			{Name: "attack_strategy", Type: TypeObject, Required: true, Strict: true, Fields: []Field{
				{Name: "mode", Type: TypeString, Required: true},
				{Name: "total_vectors", Type: TypeInt, Required: true, Min: fptr(0)},
				{Name: "selected_vectors", Type: TypeList, WarnIfEmpty: true, Elem: &Field{
					Type: TypeObject,
					Fields: []Field{
						{Name: "category", Type: TypeString, Required: true},
						{Name: "priority", Type: TypeInt, Required: true, Min: fptr(1)},
						{Name: "rationale", Type: TypeString, Required: true},
						{Name: "attack_styles", Type: TypeList, Elem: &Field{Type: TypeString}},
						{Name: "targets", Type: TypeList, Elem: &strategyTarget},
					},
				}},
				// Keyed by attacker name, so the key set is open.
				{Name: "attacker_assignments", Type: TypeAny},
				{Name: "grounding_plan", Type: TypeObject, Fields: []Field{
					{Name: "enabled", Type: TypeBool, Default: true},
					{Name: "agents", Type: TypeList, Elem: &Field{Type: TypeString}},
				}},
				{Name: "meta_analysis", Type: TypeObject, Fields: []Field{
					{Name: "enabled", Type: TypeBool, Default: false},
					{Name: "focus", Type: TypeString},
				}},
				{Name: "notes", Type: TypeList, Elem: &Field{Type: TypeString}},
			}},
		}},
	})

	register(&Schema{
		Name:    "context",
		Version: 1,
		Doc:     "Claim and risk-surface analysis from the context-analyzer agent.",
		Root: Field{Type: TypeObject, Strict: true, Fields: []Field{
			{Name: "context_analysis", Type: TypeObject, Required: true, Fields: []Field{
				{Name: "summary", Type: TypeAny},
				{Name: "claim_analysis", Type: TypeList, Required: true, Elem: &Field{
					Type: TypeObject,
					Fields: []Field{
						{Name: "claim_id", Type: TypeString, Required: true},
						{Name: "risk_level", Type: TypeString,
							WarnIfMissing: "missing 'risk_level'"},
						{Name: "content", Type: TypeString},
						{Name: "original_text", Type: TypeString},
						{Name: "verifiability", Type: TypeString,
							WarnEnum: []string{"verifiable", "partially_verifiable", "unverifiable"}},
						{Name: "risk_factors", Type: TypeList, Elem: &Field{Type: TypeString}},
						{Name: "depends_on", Type: TypeList, Elem: &Field{Type: TypeString}},
					},
				}},
				{Name: "reasoning_patterns", Type: TypeList, Elem: &Field{Type: TypeString}},
				{Name: "risk_surface", Type: TypeObject, Required: true, Fields: []Field{
					{Name: "areas", Type: TypeList, Elem: &Field{Type: TypeString}},
					{Name: "exposure_level", Type: TypeString},
				}},
				{Name: "dependency_graph", Type: TypeObject, Fields: []Field{
					{Name: "roots", Type: TypeList, Elem: &Field{Type: TypeString}},
					{Name: "chains", Type: TypeList, Elem: &Field{
						Type: TypeObject,
						Fields: []Field{
							{Name: "root", Type: TypeString, Required: true},
							{Name: "depends", Type: TypeList, Elem: &Field{Type: TypeString}},
							{Name: "risk_if_root_fails", Type: TypeString},
						},
					}},
				}},
				{Name: "key_observations", Type: TypeList, Elem: &Field{Type: TypeString}},
			}},
		}},
	})

	register(&Schema{
		Name:    "grounding",
		Version: 1,
		Doc:     "Per-finding evidence assessments from the grounding agents.",
		Root: Field{Type: TypeObject, Strict: true, Fields: []Field{
			{Name: "grounding_results", Type: TypeObject, Required: true, Strict: true, Fields: []Field{
				{Name: "agent", Type: TypeString, Required: true},
				{Name: "assessments", Type: TypeList, Required: true, WarnIfEmpty: true,
					Elem: &groundingAssessment},
			}},
		}},
	})

	register(&Schema{
		Name:    "report",
		Version: 1,
		Doc:     "Final synthesized red-team report.",
		Root: Field{Type: TypeObject, Strict: true, Fields: []Field{
			{Name: "executive_summary", Type: TypeString, Required: true, MinLen: iptr(50)},
			{Name: "risk_overview", Type: TypeObject, Required: true, Fields: []Field{
				{Name: "overall_risk_level", Type: TypeEnum, Required: true, Enum: reportRiskLevels},
				{Name: "analysis_confidence", Type: TypeString, Pattern: percentPattern},
				{Name: "categories", Type: TypeList, Elem: &Field{
					Type: TypeObject,
					Fields: []Field{
						{Name: "category", Type: TypeEnum, Required: true, Enum: riskCategories},
						{Name: "severity", Type: TypeEnum, Required: true, Enum: reportRiskLevels},
						{Name: "count", Type: TypeInt, Min: fptr(0), Default: 0},
						{Name: "confidence", Type: TypeString, Pattern: percentPattern},
					},
				}},
			}},
			{Name: "findings", Type: TypeObject, Required: true, Fields: []Field{
				{Name: "critical", Type: TypeList, Elem: &reportFinding},
				{Name: "high", Type: TypeList, Elem: &reportFinding},
				{Name: "medium", Type: TypeList, Elem: &reportFinding},
				{Name: "low", Type: TypeList, Elem: &reportFinding},
			}},
			{Name: "patterns_detected", Type: TypeList, Elem: &Field{
				Type: TypeObject,
				Fields: []Field{
					{Name: "name", Type: TypeString, Required: true},
					{Name: "description", Type: TypeString, Required: true},
					{Name: "instances", Type: TypeInt, Min: fptr(1), Default: 1},
				},
			}},
			{Name: "recommendations", Type: TypeObject, Fields: []Field{
				{Name: "immediate", Type: TypeList, Elem: &Field{Type: TypeString}},
				{Name: "short_term", Type: TypeList, Elem: &Field{Type: TypeString}},
				{Name: "long_term", Type: TypeList, Elem: &Field{Type: TypeString}},
			}},
			{Name: "limitations", Type: TypeObject,
				WarnIfMissing: "missing 'limitations' section",
				Fields: []Field{
					{Name: "scope", Type: TypeString},
					{Name: "coverage", Type: TypeString},
					{Name: "confidence_note", Type: TypeString},
					{Name: "temporal_note", Type: TypeString},
				}},
			{Name: "methodology", Type: TypeObject, Fields: []Field{
				{Name: "mode", Type: TypeEnum, Enum: []string{"quick", "standard", "deep"},
					Default: "standard"},
				{Name: "grounding_enabled", Type: TypeBool, Default: true},
				{Name: "categories_analyzed", Type: TypeList, Elem: &Field{Type: TypeString}},
			}},
		}},
	})

	registerPRSchemas()
	registerFixSchemas()
}

var strategyTarget = Field{
	Type: TypeObject,
	Fields: []Field{
		{Name: "claim_id", Type: TypeString},
		{Name: "area", Type: TypeString},
		{Name: "reason", Type: TypeString, Required: true},
	},
}

var groundingAssessment = Field{
	Type: TypeObject,
	Fields: []Field{
		findingID("finding_id"),
		{Name: "evidence_strength", Type: TypeNumber, Required: true, Min: fptr(0), Max: fptr(1)},
		{Name: "original_confidence", Type: TypeNumber, Required: true, Min: fptr(0), Max: fptr(1)},
		{Name: "evidence_review", Type: TypeObject, Required: true, Fields: []Field{
			{Name: "evidence_exists", Type: TypeBool, Required: true},
			// true, false, or "partial" — left free-form on purpose.
			{Name: "evidence_accurate", Type: TypeAny, Default: true},
			{Name: "evidence_sufficient", Type: TypeAny, Default: true},
		}},
		{Name: "quote_verification", Type: TypeObject, Required: true, Fields: []Field{
			{Name: "original_quote", Type: TypeString},
			{Name: "actual_source", Type: TypeString},
			{Name: "match_quality", Type: TypeEnum, Default: "exact",
				Enum: []string{"exact", "close", "partial", "mismatch", "not_found"}},
		}},
		{Name: "inference_validity", Type: TypeObject, Required: true, Fields: []Field{
			{Name: "valid", Type: TypeAny, Default: true},
			{Name: "reasoning", Type: TypeString},
		}},
		{Name: "issues_found", Type: TypeList, Elem: &Field{
			Type: TypeObject,
			Fields: []Field{
				{Name: "issue", Type: TypeString, Required: true},
				{Name: "severity", Type: TypeEnum, Default: "medium",
					Enum: []string{"high", "medium", "low"}},
			},
		}},
		{Name: "adjusted_confidence", Type: TypeNumber, Min: fptr(0), Max: fptr(1),
			WarnIfMissing: "missing 'adjusted_confidence'"},
		{Name: "notes", Type: TypeString,
			WarnIfMissing: "missing 'notes' - explain rationale"},
	},
}

var reportFinding = Field{
	Type: TypeObject,
	Fields: []Field{
		findingID("id"),
		{Name: "category", Type: TypeString, Required: true},
		{Name: "severity", Type: TypeEnum, Required: true, Enum: findingSeverities},
		{Name: "title", Type: TypeString, Required: true, MinLen: iptr(10)},
		{Name: "confidence", Type: TypeString, Required: true, Pattern: percentPattern},
		{Name: "evidence", Type: TypeObject,
			WarnIfMissing: "missing 'evidence' field",
			Fields: []Field{
				{Name: "quote", Type: TypeString, Required: true},
				{Name: "source", Type: TypeString, Required: true},
				{Name: "message_num", Type: TypeInt},
			}},
		{Name: "issue", Type: TypeString},
		{Name: "probing_question", Type: TypeString},
		{Name: "recommendation", Type: TypeString,
			WarnIfMissing: "missing 'recommendation' field"},
		{Name: "grounding_notes", Type: TypeObject, Fields: []Field{
			{Name: "evidence_strength", Type: TypeNumber, Required: true, Min: fptr(0), Max: fptr(1)},
			{Name: "notes", Type: TypeString},
		}},
	},
}

func registerPRSchemas() {
	prFinding := Field{
		Type: TypeObject, Strict: true,
		Fields: []Field{
			findingID("id"),
			{Name: "severity", Type: TypeEnum, Required: true, Enum: severityLevels},
			{Name: "title", Type: TypeString, Required: true},
			{Name: "description", Type: TypeString, Required: true, MinLen: iptr(10)},
			{Name: "file_path", Type: TypeString},
			{Name: "line_ranges", Type: TypeAny},
			{Name: "recommendation", Type: TypeString, Required: true, MinLen: iptr(10)},
			{Name: "confidence", Type: TypeNumber, Required: true, Min: fptr(0), Max: fptr(1)},
		},
	}

	register(&Schema{
		Name:    "pr_report",
		Version: 1,
		Doc:     "PR-specific red-team report with diff-level findings.",
		Root: Field{Type: TypeObject, Strict: true, Fields: []Field{
			{Name: "executive_summary", Type: TypeString, Required: true, MinLen: iptr(50)},
			{Name: "pr_summary", Type: TypeObject, Required: true, Strict: true, Fields: []Field{
				{Name: "title", Type: TypeString},
				{Name: "description", Type: TypeString},
				{Name: "files_changed", Type: TypeInt, Required: true, Min: fptr(0)},
				{Name: "additions", Type: TypeInt, Required: true, Min: fptr(0)},
				{Name: "deletions", Type: TypeInt, Required: true, Min: fptr(0)},
				{Name: "pr_size", Type: TypeEnum, Required: true,
					Enum: []string{"tiny", "small", "medium", "large", "massive"}},
				{Name: "high_risk_files", Type: TypeList, Elem: &Field{Type: TypeString}},
			}},
			{Name: "risk_level", Type: TypeEnum, Required: true, Enum: severityLevels},
			{Name: "findings", Type: TypeList, WarnIfEmpty: true, Elem: &prFinding},
			// Keyed by file path, so left free-form.
			{Name: "findings_by_file", Type: TypeAny},
			{Name: "breaking_changes", Type: TypeList, Elem: &Field{
				Type: TypeObject, Strict: true,
				Fields: []Field{
					{Name: "type", Type: TypeString, Required: true},
					{Name: "description", Type: TypeString, Required: true, MinLen: iptr(10)},
					{Name: "file_path", Type: TypeString, Required: true},
					{Name: "impact", Type: TypeString, Required: true, MinLen: iptr(10)},
					{Name: "mitigation", Type: TypeString},
				},
			}},
			{Name: "recommendations", Type: TypeList, Elem: &Field{Type: TypeString}},
			{Name: "test_coverage_notes", Type: TypeString,
				WarnIfMissing: "missing 'test_coverage_notes'"},
		}},
	})

	register(&Schema{
		Name:    "diff_analysis",
		Version: 1,
		Doc:     "Per-file risk analysis of a git diff from the diff-analyzer agent.",
		Root: Field{Type: TypeObject, Strict: true, Fields: []Field{
			{Name: "diff_analysis", Type: TypeObject, Required: true, Strict: true, Fields: []Field{
				{Name: "summary", Type: TypeObject, Required: true, Strict: true, Fields: []Field{
					{Name: "files_changed", Type: TypeInt, Required: true, Min: fptr(0)},
					{Name: "high_risk_files", Type: TypeInt, Required: true, Min: fptr(0)},
					{Name: "medium_risk_files", Type: TypeInt, Required: true, Min: fptr(0)},
					{Name: "low_risk_files", Type: TypeInt, Required: true, Min: fptr(0)},
					{Name: "total_insertions", Type: TypeInt, Required: true, Min: fptr(0)},
					{Name: "total_deletions", Type: TypeInt, Required: true, Min: fptr(0)},
				}},
				{Name: "file_analysis", Type: TypeList, Elem: &Field{
					Type: TypeObject, Strict: true,
					Fields: []Field{
						{Name: "file_id", Type: TypeString, Required: true},
						{Name: "path", Type: TypeString, Required: true},
						{Name: "risk_level", Type: TypeEnum, Required: true,
							Enum: []string{"high", "medium", "low"}},
						{Name: "risk_score", Type: TypeNumber, Required: true, Min: fptr(0), Max: fptr(1)},
						{Name: "change_summary", Type: TypeString, Required: true},
						{Name: "risk_factors", Type: TypeList, Elem: &Field{Type: TypeString}},
						{Name: "line_ranges", Type: TypeAny},
						{Name: "change_type", Type: TypeEnum, Required: true,
							Enum: []string{"addition", "modification", "deletion", "refactor"}},
						{Name: "insertions", Type: TypeInt, Required: true, Min: fptr(0)},
						{Name: "deletions", Type: TypeInt, Required: true, Min: fptr(0)},
					},
				}},
				{Name: "risk_surface", Type: TypeList, Elem: &Field{
					Type: TypeObject, Strict: true,
					Fields: []Field{
						{Name: "category", Type: TypeString, Required: true},
						{Name: "exposure", Type: TypeEnum, Required: true,
							Enum: []string{"high", "medium", "low", "none"}},
						{Name: "affected_files", Type: TypeList, Elem: &Field{Type: TypeString}},
						{Name: "notes", Type: TypeString, Required: true},
					},
				}},
				{Name: "patterns_detected", Type: TypeList, Elem: &Field{
					Type: TypeObject, Strict: true,
					Fields: []Field{
						{Name: "pattern", Type: TypeString, Required: true},
						{Name: "description", Type: TypeString, Required: true},
						{Name: "instances", Type: TypeInt, Required: true, Min: fptr(1)},
						{Name: "affected_files", Type: TypeList, Elem: &Field{Type: TypeString}},
						{Name: "risk_implication", Type: TypeString, Required: true},
					},
				}},
				{Name: "high_risk_files", Type: TypeList, Elem: &Field{Type: TypeString}},
				{Name: "focus_areas", Type: TypeList, Elem: &Field{
					Type: TypeObject, Strict: true,
					Fields: []Field{
						{Name: "area", Type: TypeString, Required: true},
						{Name: "files", Type: TypeList, Elem: &Field{Type: TypeString}},
						{Name: "rationale", Type: TypeString, Required: true},
					},
				}},
				{Name: "key_observations", Type: TypeList, Elem: &Field{Type: TypeString}},
			}},
		}},
	})
}

func registerFixSchemas() {
	register(&Schema{
		Name:    "fix_planner",
		Version: 1,
		Doc:     "Fix plan with 1-3 candidate options for a single finding.",
		Root: Field{Type: TypeObject, Strict: true, Fields: []Field{
			{Name: "fix_plan", Type: TypeObject, Required: true, Strict: true, Fields: []Field{
				findingID("finding_id"),
				{Name: "summary", Type: TypeString, Required: true, MinLen: iptr(10)},
				{Name: "fix_options", Type: TypeList, Required: true,
					MinItems: iptr(1), MaxItems: iptr(3),
					Elem: &Field{
						Type: TypeObject,
						Fields: []Field{
							{Name: "approach", Type: TypeString, Required: true},
							{Name: "changes", Type: TypeList, Elem: &Field{Type: TypeString}},
							{Name: "risk", Type: TypeEnum, Default: "medium",
								Enum: []string{"low", "medium", "high"}},
							{Name: "rationale", Type: TypeString,
								WarnIfMissing: "missing 'rationale' field"},
						},
					}},
				{Name: "recommended_option", Type: TypeInt, Min: fptr(1), Max: fptr(3)},
			}},
		}},
	})

	register(&Schema{
		Name:    "fix_coordinator",
		Version: 1,
		Doc:     "Question batches the fix-coordinator raises to the user.",
		Root: Field{Type: TypeObject, Strict: true, Fields: []Field{
			{Name: "question_batches", Type: TypeList, Required: true, MinItems: iptr(1),
				Elem: &Field{
					Type: TypeObject,
					Fields: []Field{
						{Name: "topic", Type: TypeString, Required: true},
						{Name: "questions", Type: TypeList, Required: true, MinItems: iptr(1),
							Elem: &Field{
								Type: TypeObject,
								Fields: []Field{
									{Name: "question", Type: TypeString, Required: true},
									{Name: "context", Type: TypeString},
									{Name: "options", Type: TypeList, Required: true,
										MinItems: iptr(2), MaxItems: iptr(4),
										Elem: &Field{
											Type: TypeObject,
											Fields: []Field{
												{Name: "label", Type: TypeString, Required: true},
												{Name: "description", Type: TypeString},
											},
										}},
									{Name: "default_option", Type: TypeInt, Min: fptr(1)},
								},
							}},
					},
				}},
		}},
	})

	register(&Schema{
		Name:    "fix_orchestrator",
		Version: 1,
		Doc:     "Top-level fix-orchestrator output: summary after execution, or question batches.",
		Root: Field{Type: TypeObject, Strict: true, Fields: []Field{
			{Name: "execution_summary", Type: TypeAny},
			{Name: "question_batches", Type: TypeAny},
		}},
	})

	// Flat stage outputs of the fix pipeline. They all share the finding_id
	// root key, so the detector cannot tell them apart; they are selected
	// with an explicit schema name.
	register(&Schema{
		Name:    "fix_reader",
		Version: 1,
		Root: Field{Type: TypeObject, Strict: true, Fields: []Field{
			findingID("finding_id"),
			{Name: "parsed_intent", Type: TypeString, Required: true},
			{Name: "context_hints", Type: TypeList, Elem: &Field{Type: TypeString}},
		}},
	})

	register(&Schema{
		Name:    "fix_planner_v2",
		Version: 1,
		Root: Field{Type: TypeObject, Strict: true, Fields: []Field{
			findingID("finding_id"),
			{Name: "fix_plan", Type: TypeAny, Required: true},
		}},
	})

	register(&Schema{
		Name:    "fix_red_teamer",
		Version: 1,
		Root: Field{Type: TypeObject, Strict: true, Fields: []Field{
			findingID("finding_id"),
			{Name: "validation", Type: TypeAny, Required: true},
			{Name: "approved", Type: TypeBool, Required: true},
			{Name: "adjusted_plan", Type: TypeAny},
		}},
	})

	register(&Schema{
		Name:    "fix_applicator",
		Version: 1,
		Root: Field{Type: TypeObject, Strict: true, Fields: []Field{
			findingID("finding_id"),
			{Name: "applied_changes", Type: TypeAny, Required: true},
			{Name: "success", Type: TypeBool, Required: true},
			{Name: "error", Type: TypeString},
		}},
	})

	register(&Schema{
		Name:    "fix_committer",
		Version: 1,
		Root: Field{Type: TypeObject, Strict: true, Fields: []Field{
			findingID("finding_id"),
			{Name: "commit_result", Type: TypeAny},
			{Name: "success", Type: TypeBool, Required: true},
			{Name: "error", Type: TypeString},
		}},
	})

	register(&Schema{
		Name:    "fix_validator",
		Version: 1,
		Root: Field{Type: TypeObject, Strict: true, Fields: []Field{
			findingID("finding_id"),
			{Name: "commit_hash", Type: TypeString, Required: true},
			{Name: "validation_result", Type: TypeAny, Required: true},
		}},
	})

	register(&Schema{
		Name:    "fix_phase_coordinator",
		Version: 1,
		Root: Field{Type: TypeObject, Strict: true, Fields: []Field{
			findingID("finding_id"),
			{Name: "status", Type: TypeEnum, Required: true, Enum: []string{"success", "failed"}},
			{Name: "commit_hash", Type: TypeString},
			{Name: "files_changed", Type: TypeList, Elem: &Field{Type: TypeString}},
			{Name: "validation", Type: TypeString},
			{Name: "retry_count", Type: TypeInt, Required: true, Min: fptr(0), Max: fptr(2)},
			{Name: "error", Type: TypeString},
			{Name: "revert_command", Type: TypeString},
		}},
	})
}
