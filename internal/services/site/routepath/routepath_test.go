package routepath

import "testing"

func TestTopLevelRouteConstants(t *testing.T) {
	t.Parallel()

	if Root != "/" {
		t.Fatalf("Root = %q", Root)
	}
	if Health != "/up" {
		t.Fatalf("Health = %q", Health)
	}
	if News != "/news" {
		t.Fatalf("News = %q", News)
	}
	if APILead != "/api/lead" {
		t.Fatalf("APILead = %q", APILead)
	}
	if APIProcess != "/api/process" {
		t.Fatalf("APIProcess = %q", APIProcess)
	}
	if NewsPostPattern != "/news/{postID}" {
		t.Fatalf("NewsPostPattern = %q", NewsPostPattern)
	}
}

func TestRouteBuilders(t *testing.T) {
	t.Parallel()

	if got := NewsPost("1"); got != "/news/1" {
		t.Fatalf("NewsPost() = %q", got)
	}
	if got := NewsPost(" a/b "); got != "/news/a%2Fb" {
		t.Fatalf("NewsPost(escaped) = %q", got)
	}
	if got := Static("/site.css"); got != "/static/site.css" {
		t.Fatalf("Static() = %q", got)
	}
	if got := Section(AnchorSteps); got != "/#steps" {
		t.Fatalf("Section() = %q", got)
	}
}
