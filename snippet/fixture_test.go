package snippet

// Templates and expected output for a frame holding a text node and a
// nested frame of two button instances.

const gridTemplate = `<Grid 
  direction="{{autolayout.layoutMode}}"
  background={theme.{{variables.fills|camel}}}
  padding=\{{\
{{?variables.paddingTop}}top: theme.{{variables.paddingTop|camel}},\
{{!variables.paddingTop}}top: {{autolayout.paddingTop}},\
{{?variables.paddingRight}}right: theme.{{variables.paddingRight|camel}},\
{{!variables.paddingRight}}right: {{autolayout.paddingRight}},\
{{?variables.paddingBottom}}bottom: theme.{{variables.paddingBottom|camel}},\
{{!variables.paddingBottom}}bottom: {{autolayout.paddingBottom}},\
{{?variables.paddingLeft}}left: theme.{{variables.paddingLeft|camel}}\
{{!variables.paddingLeft}}left: {{autolayout.paddingLeft}}\
}}
  {{?variables.itemSpacing}}gap={theme.{{variables.itemSpacing|camel}}}
  {{!variables.itemSpacing}}gap={{{autolayout.itemSpacing}}}
  {{?autolayout.layoutMode=horizontal}}verticalAlign="{{autolayout.counterAxisAlignItems}}"
  {{!autolayout.layoutMode=horizontal}}verticalAlign="{{autolayout.primaryAxisAlignItems}}"
  {{?autolayout.layoutMode=horizontal}}horizontalAlign="{{autolayout.primaryAxisAlignItems}}"
  {{!autolayout.layoutMode=horizontal}}horizontalAlign="{{autolayout.counterAxisAlignItems}}"
{{!figma.children}} />
{{?figma.children}}>
  {{figma.children}}
{{?figma.children}}</Grid>`

const typographyTemplate = `<Typography\
variant="{{node.textStyle}}"\
{{!node.textStyle}}variant="unknown"\
\>{{node.characters|raw}}</Typography>`

const buttonTemplate = `<Button
  {{?property.state=disabled}}disabled
  {{!property.size=medium}}size="{{property.size}}"
  variant="{{property.variant}}"
  {{?property.iconStart.b=true}}iconStart={<{{property.iconStart.i|pascal}} />}
  {{?property.iconEnd.b=true}}iconEnd={<{{property.iconEnd.i|pascal}} />}
  onClick={() => {}}
>
  {{property.label|raw}}
</Button>`

const recursiveExpectation = `<Grid 
  direction="vertical"
  background={theme.colorBgSubtle}
  padding={{ top: theme.paddingSpacious, right: theme.paddingComfortable, bottom: theme.paddingSpacious, left: theme.paddingComfortable }}
  gap={theme.gapLg}
  verticalAlign="center"
  horizontalAlign="center"
>
  <Typography variant="heading-02">Heyo look at this</Typography>
  <Grid 
    direction="horizontal"
    padding={{ top: 0, right: 0, bottom: 0, left: 0 }}
    gap={theme.gapMd}
    verticalAlign="center"
    horizontalAlign="max"
  >
    <Button
      size="small"
      variant="inverse"
      onClick={() => {}}
    >
      Cancel
    </Button>
    <Button
      variant="secondary"
      iconEnd={<IconArrowRight />}
      onClick={() => {}}
    >
      Let's go!
    </Button>
  </Grid>
</Grid>`

func react(code string) []Definition {
	return []Definition{{Title: "React", Language: LanguageJavaScript, Code: code}}
}

func recursiveFixture() *fakeNode {
	root := &fakeNode{
		id:        "1:1",
		typ:       TypeFrame,
		templates: react(gridTemplate),
		params: NewParams(map[string]string{
			"node.name":                        "buttons-frame",
			"node.type":                        "frame",
			"variables.fills":                  "color-bg-subtle",
			"variables.itemSpacing":            "gap-lg",
			"variables.paddingLeft":            "padding-comfortable",
			"variables.paddingTop":             "padding-spacious",
			"variables.paddingRight":           "padding-comfortable",
			"variables.paddingBottom":          "padding-spacious",
			"autolayout.layoutMode":            "vertical",
			"autolayout.paddingLeft":           "12",
			"autolayout.paddingRight":          "12",
			"autolayout.paddingTop":            "16",
			"autolayout.paddingBottom":         "16",
			"autolayout.itemSpacing":           "16",
			"autolayout.primaryAxisAlignItems": "center",
			"autolayout.counterAxisAlignItems": "center",
		}, map[string]string{
			"node.name":                        "Buttons Frame",
			"node.type":                        "FRAME",
			"variables.fills":                  "color/bg-subtle",
			"variables.itemSpacing":            "gap/lg",
			"autolayout.layoutMode":            "VERTICAL",
			"autolayout.primaryAxisAlignItems": "CENTER",
			"autolayout.counterAxisAlignItems": "CENTER",
		}),
	}
	text := &fakeNode{
		id:        "1:2",
		typ:       TypeText,
		templates: react(typographyTemplate),
		params: NewParams(map[string]string{
			"node.name":       "heyo-look-at-this",
			"node.characters": "heyo-look-at-this",
			"node.textStyle":  "heading-02",
		}, map[string]string{
			"node.name":       "Heyo look at this",
			"node.characters": "Heyo look at this",
			"node.textStyle":  "Heading 02",
		}),
	}
	row := &fakeNode{
		id:        "1:3",
		typ:       TypeFrame,
		templates: react(gridTemplate),
		params: NewParams(map[string]string{
			"node.name":                        "frame-2",
			"variables.itemSpacing":            "gap-md",
			"autolayout.layoutMode":            "horizontal",
			"autolayout.paddingLeft":           "0",
			"autolayout.paddingRight":          "0",
			"autolayout.paddingTop":            "0",
			"autolayout.paddingBottom":         "0",
			"autolayout.itemSpacing":           "12",
			"autolayout.primaryAxisAlignItems": "max",
			"autolayout.counterAxisAlignItems": "center",
		}, nil),
	}
	cancel := &fakeNode{
		id:        "1:4",
		typ:       TypeInstance,
		templates: react(buttonTemplate),
		params: NewParams(map[string]string{
			"property.iconEnd.b":   "false",
			"property.iconEnd.i":   "icon-refresh",
			"property.iconStart.b": "false",
			"property.iconStart.i": "icon-heart-solid",
			"property.label":       "cancel",
			"property.variant":     "inverse",
			"property.state":       "default",
			"property.size":        "small",
		}, map[string]string{
			"property.label": "Cancel",
		}),
	}
	proceed := &fakeNode{
		id:        "1:5",
		typ:       TypeInstance,
		templates: react(buttonTemplate),
		params: NewParams(map[string]string{
			"property.iconEnd.b":   "true",
			"property.iconEnd.i":   "icon-arrow-right",
			"property.iconStart.b": "false",
			"property.iconStart.i": "icon-heart-solid",
			"property.label":       "lets-go",
			"property.variant":     "secondary",
			"property.state":       "default",
			"property.size":        "medium",
		}, map[string]string{
			"property.iconEnd.i": "Icon Arrow Right",
			"property.label":     "Let's go!",
		}),
	}
	row.add(cancel, proceed)
	root.add(text, row)
	return root
}
