package schema

// Plugin-context-optimization pipeline output shapes. The improvement shapes
// are strict all the way down (the upstream contract forbids extra keys on
// them); analysis shapes keep their catch-all sections free-form.

var contextTiers = []string{"FULL", "SELECTIVE", "FILTERED", "MINIMAL", "METADATA"}

var improvementTypes = []string{
	"TIER_SPEC", "NOT_PASSED", "REFERENCE_PATTERN", "LAZY_LOAD",
	"FIREWALL", "PHASE_SPLIT", "SUBAGENT_EXTRACT",
	"HANDOFF_SCHEMA", "PYDANTIC_MODEL", "VALIDATION_HOOK",
	"SEVERITY_BATCH",
}

var patternTypes = []string{
	"HIERARCHICAL", "SWARM", "REACT", "PLAN_EXECUTE", "REFLECTION", "HYBRID", "FIREWALL",
}

var violationTypes = []string{
	"FULL_SNAPSHOT", "UNNECESSARY_FIELDS",
	"MISSING_TIER", "WRONG_TIER",
	"LARGE_EMBEDDING", "REPEATED_CONTEXT",
	"UPFRONT_LOAD",
	"SNAPSHOT_BROADCAST", "DEFENSIVE_INCLUSION", "GROUNDING_EVERYTHING",
}

var priorityLevels = []string{"HIGH", "MEDIUM", "LOW"}

func priorityField() Field {
	return Field{Name: "priority", Type: TypeEnum, Enum: priorityLevels, Default: "MEDIUM"}
}

func init() {
	register(&Schema{
		Name:    "plugin_analysis",
		Version: 1,
		Doc:     "Structural analysis of a plugin from the plugin-analyzer agent.",
		Root: Field{Type: TypeObject, Strict: true, Fields: []Field{
			{Name: "plugin_analysis", Type: TypeObject, Required: true, Strict: true, Fields: []Field{
				{Name: "plugin_name", Type: TypeString, Required: true},
				{Name: "plugin_version", Type: TypeString},
				{Name: "current_patterns", Type: TypeList, Elem: &Field{
					Type: TypeObject,
					Fields: []Field{
						{Name: "pattern_type", Type: TypeEnum, Required: true, Enum: patternTypes},
						{Name: "confidence", Type: TypeNumber, Required: true, Min: fptr(0), Max: fptr(1)},
						{Name: "evidence", Type: TypeList, Elem: &Field{Type: TypeString}},
						{Name: "files", Type: TypeList, Elem: &Field{Type: TypeString}},
					},
				}},
				{Name: "violations", Type: TypeList, Elem: &Field{
					Type: TypeObject, Strict: true,
					Fields: []Field{
						{Name: "violation_type", Type: TypeEnum, Required: true, Enum: violationTypes},
						{Name: "file", Type: TypeString, Required: true},
						{Name: "line", Type: TypeInt, Min: fptr(1)},
						{Name: "description", Type: TypeString, Required: true},
						{Name: "current_code", Type: TypeString},
						{Name: "recommendation", Type: TypeString, Required: true},
						{Name: "severity", Type: TypeEnum, Enum: priorityLevels, Default: "MEDIUM"},
					},
				}},
				{Name: "agents", Type: TypeList, Elem: &Field{
					Type: TypeObject,
					Fields: []Field{
						{Name: "file", Type: TypeString, Required: true},
						{Name: "agent_type", Type: TypeString, Required: true},
						{Name: "tools", Type: TypeList, Elem: &Field{Type: TypeString}},
						{Name: "context_tier", Type: TypeEnum, Enum: contextTiers},
						{Name: "receives", Type: TypeList, Elem: &Field{Type: TypeString}},
						{Name: "not_provided", Type: TypeList, Elem: &Field{Type: TypeString}},
						{Name: "estimated_tokens", Type: TypeInt, Min: fptr(0)},
						{Name: "issues", Type: TypeList, Elem: &Field{Type: TypeString}},
					},
				}},
				{Name: "opportunities", Type: TypeList, WarnIfEmpty: true, Elem: &Field{
					Type: TypeObject,
					Fields: []Field{
						{Name: "category", Type: TypeString, Required: true,
							WarnEnum: []string{"context", "orchestration", "handoff"}},
						{Name: "description", Type: TypeString, Required: true},
						{Name: "files_affected", Type: TypeList, Elem: &Field{Type: TypeString}},
						{Name: "estimated_reduction", Type: TypeNumber, Min: fptr(0), Max: fptr(1)},
						priorityField(),
						{Name: "improvement_type", Type: TypeEnum, Required: true, Enum: improvementTypes},
					},
				}},
				{Name: "metrics", Type: TypeObject, Fields: []Field{
					{Name: "total_files", Type: TypeInt, Min: fptr(0), Default: 0},
					{Name: "agent_count", Type: TypeInt, Min: fptr(0), Default: 0},
					{Name: "entry_agents", Type: TypeInt, Min: fptr(0), Default: 0},
					{Name: "sub_agents", Type: TypeInt, Min: fptr(0), Default: 0},
					{Name: "command_count", Type: TypeInt, Min: fptr(0), Default: 0},
					{Name: "skill_count", Type: TypeInt, Min: fptr(0), Default: 0},
					{Name: "estimated_total_tokens", Type: TypeInt, Min: fptr(0)},
					{Name: "tier_compliance", Type: TypeNumber, Min: fptr(0), Max: fptr(1), Default: 0.0},
				}},
				{Name: "summary", Type: TypeString,
					WarnIfMissing: "missing 'summary' field"},
			}},
		}},
	})

	register(&Schema{
		Name:    "plan_analysis",
		Version: 1,
		Doc:     "Phase and handoff analysis of a plan from the plan-analyzer agent.",
		Root: Field{Type: TypeObject, Strict: true, Fields: []Field{
			{Name: "plan_analysis", Type: TypeObject, Required: true, Strict: true, Fields: []Field{
				{Name: "plan_name", Type: TypeString},
				{Name: "phases", Type: TypeList, WarnIfEmpty: true, Elem: &Field{
					Type: TypeObject,
					Fields: []Field{
						{Name: "name", Type: TypeString, Required: true},
						{Name: "description", Type: TypeString},
						{Name: "agents_involved", Type: TypeList, Elem: &Field{Type: TypeString}},
						{Name: "context_received", Type: TypeList, Elem: &Field{Type: TypeString}},
						{Name: "context_tier", Type: TypeEnum, Enum: contextTiers},
						{Name: "issues", Type: TypeList, Elem: &Field{Type: TypeString}},
					},
				}},
				// Keyed by phase name, so the key set is open.
				{Name: "context_per_phase", Type: TypeAny},
				{Name: "handoff_points", Type: TypeList, Elem: &Field{
					Type: TypeObject,
					Fields: []Field{
						{Name: "from_phase", Type: TypeString, Required: true},
						{Name: "to_phase", Type: TypeString, Required: true},
						{Name: "data_transferred", Type: TypeList, Elem: &Field{Type: TypeString}},
						{Name: "potential_issues", Type: TypeList, Elem: &Field{Type: TypeString}},
					},
				}},
				{Name: "violations", Type: TypeList, Elem: &Field{Type: TypeString}},
				{Name: "total_phases", Type: TypeInt, Min: fptr(0), Default: 0},
				{Name: "phases_with_tier_spec", Type: TypeInt, Min: fptr(0), Default: 0},
				{Name: "estimated_total_context", Type: TypeString},
			}},
		}},
	})

	register(&Schema{
		Name:    "context_flow_map",
		Version: 1,
		Doc:     "Data-flow edges between agents from the context-flow-mapper agent.",
		Root: Field{Type: TypeObject, Strict: true, Fields: []Field{
			{Name: "context_flow_map", Type: TypeObject, Required: true, Strict: true, Fields: []Field{
				{Name: "flows", Type: TypeList, WarnIfEmpty: true, Elem: &Field{
					Type: TypeObject, Strict: true,
					Fields: []Field{
						{Name: "from_agent", Type: TypeString, Required: true},
						{Name: "to_agent", Type: TypeString, Required: true},
						{Name: "data_passed", Type: TypeList, Elem: &Field{Type: TypeString}},
						{Name: "data_size_estimate", Type: TypeString,
							WarnEnum: []string{"small", "medium", "large"}},
						{Name: "context_tier", Type: TypeEnum, Enum: contextTiers},
						{Name: "is_redundant", Type: TypeBool, Default: false},
						{Name: "redundancy_reason", Type: TypeString},
					},
				}},
				{Name: "redundancies", Type: TypeList, Elem: &Field{
					Type: TypeObject,
					Fields: []Field{
						{Name: "description", Type: TypeString, Required: true},
						{Name: "agents_affected", Type: TypeList, Elem: &Field{Type: TypeString}},
						{Name: "data_duplicated", Type: TypeList, Elem: &Field{Type: TypeString}},
						{Name: "estimated_waste", Type: TypeString},
					},
				}},
				{Name: "missing_tiers", Type: TypeList, Elem: &Field{Type: TypeString}},
				{Name: "total_flows", Type: TypeInt, Min: fptr(0), Default: 0},
				{Name: "redundant_flows", Type: TypeInt, Min: fptr(0), Default: 0},
				{Name: "agents_mapped", Type: TypeInt, Min: fptr(0), Default: 0},
			}},
		}},
	})

	registerImprovementSchemas()
	registerGroundingAgentSchemas()

	register(&Schema{
		Name:    "improvement_report",
		Version: 1,
		Doc:     "Final synthesized improvement report returned to the main session.",
		Root: Field{Type: TypeObject, Strict: true, Fields: []Field{
			{Name: "improvement_report", Type: TypeObject, Required: true, Strict: true, Fields: []Field{
				{Name: "executive_summary", Type: TypeString, Required: true},
				{Name: "improvements_applied", Type: TypeList, WarnIfEmpty: true, Elem: &Field{
					Type: TypeObject,
					Fields: []Field{
						{Name: "improvement_id", Type: TypeString, Required: true},
						{Name: "description", Type: TypeString, Required: true},
						{Name: "files_modified", Type: TypeList, Elem: &Field{Type: TypeString}},
						{Name: "token_reduction", Type: TypeInt},
						{Name: "risk_level", Type: TypeString},
					},
				}},
				{Name: "improvements_skipped", Type: TypeList, Elem: &Field{Type: TypeString}},
				{Name: "comparison", Type: TypeObject, Strict: true, Fields: []Field{
					{Name: "total_tokens", Type: TypeObject, Fields: []Field{
						{Name: "before", Type: TypeInt, Min: fptr(0), Default: 0},
						{Name: "after", Type: TypeInt, Min: fptr(0), Default: 0},
						{Name: "reduction", Type: TypeInt, Default: 0},
						{Name: "reduction_percent", Type: TypeNumber, Min: fptr(-100), Max: fptr(100), Default: 0.0},
					}},
					named(ratioComparison, "pattern_compliance"),
					named(ratioComparison, "tier_coverage"),
				}},
				{Name: "files_modified", Type: TypeList, Elem: &Field{
					Type: TypeObject,
					Fields: []Field{
						{Name: "file_path", Type: TypeString, Required: true},
						{Name: "change_type", Type: TypeEnum, Required: true,
							Enum: []string{"modify", "create", "delete"}},
						{Name: "description", Type: TypeString, Required: true},
						{Name: "diff", Type: TypeObject, Fields: []Field{
							{Name: "before", Type: TypeString},
							{Name: "after", Type: TypeString},
							{Name: "diff", Type: TypeString},
						}},
					},
				}},
				{Name: "files_created", Type: TypeList, Elem: &Field{Type: TypeString}},
				{Name: "files_deleted", Type: TypeList, Elem: &Field{Type: TypeString}},
				{Name: "total_improvements", Type: TypeInt, Min: fptr(0), Default: 0},
				{Name: "applied_count", Type: TypeInt, Min: fptr(0), Default: 0},
				{Name: "skipped_count", Type: TypeInt, Min: fptr(0), Default: 0},
				{Name: "next_steps", Type: TypeList, Elem: &Field{
					Type: TypeObject,
					Fields: []Field{
						{Name: "description", Type: TypeString, Required: true},
						priorityField(),
						{Name: "rationale", Type: TypeString,
							WarnIfMissing: "missing 'rationale' field"},
					},
				}},
				{Name: "plugin_name", Type: TypeString},
				{Name: "analysis_mode", Type: TypeString,
					WarnEnum: []string{"quick", "standard", "deep"}},
			}},
		}},
	})

	register(&Schema{
		Name:    "challenge",
		Version: 1,
		Doc:     "Challenge assessments from the challenger agent.",
		Root: Field{Type: TypeObject, Strict: true, Fields: []Field{
			{Name: "challenge_assessments", Type: TypeList, Required: true, MinItems: iptr(1),
				Elem: &Field{
					Type: TypeObject,
					Fields: []Field{
						{Name: "improvement_id", Type: TypeString, Required: true, Pattern: findingIDPattern},
						{Name: "challenge", Type: TypeString, Required: true},
						{Name: "severity", Type: TypeEnum, Default: "medium",
							Enum: []string{"high", "medium", "low"}},
						{Name: "recommendation", Type: TypeString,
							WarnIfMissing: "missing 'recommendation' field"},
						{Name: "approved", Type: TypeBool},
					},
				}},
		}},
	})
}

// ratioComparison is the shared before/after/improvement shape for
// compliance and coverage ratios.
var ratioComparison = Field{
	Type: TypeObject,
	Fields: []Field{
		{Name: "before", Type: TypeNumber, Min: fptr(0), Max: fptr(1), Default: 0.0},
		{Name: "after", Type: TypeNumber, Min: fptr(0), Max: fptr(1), Default: 0.0},
		{Name: "improvement", Type: TypeNumber, Min: fptr(-1), Max: fptr(1), Default: 0.0},
	},
}

func registerImprovementSchemas() {
	register(&Schema{
		Name:    "context_improvement",
		Version: 1,
		Doc:     "Four-Laws context optimizations from the context-optimizer agent.",
		Root: Field{Type: TypeObject, Strict: true, Fields: []Field{
			{Name: "improvements", Type: TypeList, Required: true, MinItems: iptr(1),
				Elem: &Field{
					Type: TypeObject, Strict: true,
					Fields: []Field{
						{Name: "id", Type: TypeString, Required: true, Pattern: findingIDPattern},
						{Name: "file", Type: TypeString, Required: true},
						{Name: "improvement_type", Type: TypeEnum, Required: true, Enum: improvementTypes},
						{Name: "description", Type: TypeString, Required: true},
						{Name: "code_change", Type: TypeObject, Fields: []Field{
							{Name: "before", Type: TypeString, Required: true},
							{Name: "after", Type: TypeString, Required: true},
							{Name: "explanation", Type: TypeString,
								WarnIfMissing: "missing 'explanation' field"},
						}},
						{Name: "estimated_reduction", Type: TypeNumber, Min: fptr(0), Max: fptr(1)},
						priorityField(),
						{Name: "recommended_tier", Type: TypeEnum, Enum: contextTiers},
						{Name: "fields_to_exclude", Type: TypeList, Elem: &Field{Type: TypeString}},
					},
				}},
		}},
	})

	register(&Schema{
		Name:    "orchestration_improvement",
		Version: 1,
		Doc:     "Agent-hierarchy changes from the orchestration-improver agent.",
		Root: Field{Type: TypeObject, Strict: true, Fields: []Field{
			{Name: "improvements", Type: TypeList, Required: true, MinItems: iptr(1),
				Elem: &Field{
					Type: TypeObject, Strict: true,
					Fields: []Field{
						{Name: "id", Type: TypeString, Required: true, Pattern: findingIDPattern},
						{Name: "improvement_type", Type: TypeEnum, Required: true, Enum: improvementTypes},
						{Name: "description", Type: TypeString, Required: true},
						named(agentStructure, "current_structure"),
						named(agentStructure, "proposed_structure"),
						{Name: "files_affected", Type: TypeList, Elem: &Field{Type: TypeString}},
						{Name: "migration_steps", Type: TypeList, Elem: &Field{
							Type: TypeObject,
							Fields: []Field{
								{Name: "order", Type: TypeInt, Required: true, Min: fptr(1)},
								{Name: "description", Type: TypeString, Required: true},
								{Name: "files_affected", Type: TypeList, Elem: &Field{Type: TypeString}},
								{Name: "is_breaking", Type: TypeBool, Default: false},
							},
						}},
						{Name: "estimated_complexity", Type: TypeEnum, Enum: priorityLevels, Default: "MEDIUM"},
						priorityField(),
					},
				}},
		}},
	})

	register(&Schema{
		Name:    "handoff_improvement",
		Version: 1,
		Doc:     "Agent-communication changes from the handoff-improver agent.",
		Root: Field{Type: TypeObject, Strict: true, Fields: []Field{
			{Name: "improvements", Type: TypeList, Required: true, MinItems: iptr(1),
				Elem: &Field{
					Type: TypeObject, Strict: true,
					Fields: []Field{
						{Name: "id", Type: TypeString, Required: true, Pattern: findingIDPattern},
						{Name: "transition", Type: TypeObject, Required: true, Fields: []Field{
							{Name: "from_agent", Type: TypeString, Required: true},
							{Name: "to_agent", Type: TypeString, Required: true},
						}},
						{Name: "description", Type: TypeString, Required: true},
						{Name: "current_handoff", Type: TypeList, Elem: &Field{Type: TypeString}},
						{Name: "optimized_handoff", Type: TypeObject, Fields: []Field{
							{Name: "fields", Type: TypeList, Elem: &Field{Type: TypeString}},
							{Name: "excluded_fields", Type: TypeList, Elem: &Field{Type: TypeString}},
							{Name: "context_tier", Type: TypeEnum, Required: true, Enum: contextTiers},
						}},
						{Name: "yaml_schema", Type: TypeString},
						{Name: "pydantic_model", Type: TypeString},
						{Name: "estimated_reduction", Type: TypeNumber, Min: fptr(0), Max: fptr(1)},
						priorityField(),
					},
				}},
		}},
	})
}

var agentStructure = Field{
	Type: TypeObject,
	Fields: []Field{
		{Name: "agents", Type: TypeList, Elem: &Field{Type: TypeString}},
		// parent -> children adjacency, keyed by agent name.
		{Name: "hierarchy", Type: TypeAny},
		{Name: "entry_points", Type: TypeList, Elem: &Field{Type: TypeString}},
	},
}

// registerGroundingAgentSchemas covers the four context-engineering grounding
// agents. They all wrap their output in an "assessments" list with no
// structural discriminator between them, so they are never auto-detected and
// must be selected with an explicit schema name.
func registerGroundingAgentSchemas() {
	assessments := func(elem Field) Field {
		return Field{Name: "assessments", Type: TypeList, Required: true, MinItems: iptr(1), Elem: &elem}
	}

	register(&Schema{
		Name:    "pattern_compliance",
		Version: 1,
		Root: Field{Type: TypeObject, Strict: true, Fields: []Field{
			assessments(Field{
				Type: TypeObject, Strict: true,
				Fields: []Field{
					{Name: "improvement_id", Type: TypeString, Required: true},
					{Name: "pattern_compliant", Type: TypeBool, Required: true},
					{Name: "patterns_checked", Type: TypeList, WarnEnum: patternTypes,
						Elem: &Field{Type: TypeString}},
					{Name: "violations", Type: TypeList, Elem: &Field{
						Type: TypeObject,
						Fields: []Field{
							{Name: "pattern", Type: TypeEnum, Required: true, Enum: patternTypes},
							{Name: "violation", Type: TypeString, Required: true},
							{Name: "location", Type: TypeString},
							{Name: "suggestion", Type: TypeString},
						},
					}},
					{Name: "suggestions", Type: TypeList, Elem: &Field{Type: TypeString}},
					{Name: "confidence", Type: TypeNumber, Min: fptr(0), Max: fptr(1), Default: 0.8},
				},
			}),
		}},
	})

	register(&Schema{
		Name:    "token_estimate",
		Version: 1,
		Root: Field{Type: TypeObject, Strict: true, Fields: []Field{
			assessments(Field{
				Type: TypeObject, Strict: true,
				Fields: []Field{
					{Name: "improvement_id", Type: TypeString, Required: true},
					{Name: "before_tokens", Type: TypeInt, Required: true, Min: fptr(0)},
					{Name: "after_tokens", Type: TypeInt, Required: true, Min: fptr(0)},
					{Name: "reduction_tokens", Type: TypeInt, Default: 0},
					{Name: "reduction_percent", Type: TypeNumber, Min: fptr(-100), Max: fptr(100), Default: 0.0},
					{Name: "confidence", Type: TypeNumber, Min: fptr(0), Max: fptr(1), Default: 0.7},
					{Name: "breakdown", Type: TypeList, Elem: &Field{
						Type: TypeObject,
						Fields: []Field{
							{Name: "component", Type: TypeString, Required: true},
							{Name: "before", Type: TypeInt, Required: true, Min: fptr(0)},
							{Name: "after", Type: TypeInt, Required: true, Min: fptr(0)},
							{Name: "reduction", Type: TypeInt, Required: true},
							{Name: "reduction_percent", Type: TypeNumber, Min: fptr(-100), Max: fptr(100)},
						},
					}},
					{Name: "method", Type: TypeString,
						WarnEnum: []string{"tiktoken", "heuristic", "sample"}},
					{Name: "notes", Type: TypeString,
						WarnIfMissing: "missing 'notes' - explain estimation method"},
				},
			}),
		}},
	})

	register(&Schema{
		Name:    "consistency_check",
		Version: 1,
		Root: Field{Type: TypeObject, Strict: true, Fields: []Field{
			assessments(Field{
				Type: TypeObject, Strict: true,
				Fields: []Field{
					{Name: "improvement_id", Type: TypeString, Required: true},
					{Name: "is_internally_consistent", Type: TypeBool, Required: true},
					{Name: "conflicts_with", Type: TypeList, Elem: &Field{
						Type: TypeObject,
						Fields: []Field{
							{Name: "with_improvement_id", Type: TypeString, Required: true},
							{Name: "conflict_type", Type: TypeEnum, Required: true,
								Enum: []string{"overwrite", "dependency", "incompatible"}},
							{Name: "description", Type: TypeString, Required: true},
							{Name: "resolution", Type: TypeString},
						},
					}},
					{Name: "depends_on", Type: TypeList, Elem: &Field{
						Type: TypeObject,
						Fields: []Field{
							{Name: "requires_improvement_id", Type: TypeString, Required: true},
							{Name: "reason", Type: TypeString, Required: true},
							{Name: "is_hard_dependency", Type: TypeBool, Default: true},
						},
					}},
					{Name: "consistency_issues", Type: TypeList, Elem: &Field{Type: TypeString}},
					{Name: "recommended_order", Type: TypeInt, Min: fptr(1)},
				},
			}),
		}},
	})

	register(&Schema{
		Name:    "risk_assessment",
		Version: 1,
		Root: Field{Type: TypeObject, Strict: true, Fields: []Field{
			assessments(Field{
				Type: TypeObject, Strict: true,
				Fields: []Field{
					{Name: "improvement_id", Type: TypeString, Required: true},
					{Name: "risk_level", Type: TypeEnum, Required: true,
						Enum: []string{"CRITICAL", "HIGH", "MEDIUM", "LOW"}},
					{Name: "breaking_changes", Type: TypeList, Elem: &Field{
						Type: TypeObject,
						Fields: []Field{
							{Name: "description", Type: TypeString, Required: true},
							{Name: "affected_component", Type: TypeString, Required: true},
							{Name: "mitigation", Type: TypeString},
						},
					}},
					{Name: "rollback_possible", Type: TypeBool, Default: true},
					{Name: "rollback_complexity", Type: TypeString,
						WarnEnum: []string{"simple", "moderate", "complex"}},
					{Name: "mitigation_strategy", Type: TypeString},
					{Name: "testing_required", Type: TypeList, Elem: &Field{Type: TypeString}},
					{Name: "confidence", Type: TypeNumber, Min: fptr(0), Max: fptr(1), Default: 0.8},
					{Name: "notes", Type: TypeString},
				},
			}),
		}},
	})
}
